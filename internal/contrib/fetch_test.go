package contrib

import (
	"strings"
	"testing"
)

// The parser keys off data-date attributes rather than tag names, so the
// fixtures use plain divs and stay clear of the HTML5 table-fixup rules.

func TestParseCalendarDataCount(t *testing.T) {
	markup := `<html><body>
		<div class="day" data-date="2025-06-01" data-count="0"></div>
		<div class="day" data-date="2025-06-02" data-count="5"></div>
		<div class="day" data-date="2025-06-03" data-count="12"></div>
	</body></html>`

	counts, err := ParseCalendar(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse calendar: %v", err)
	}
	if len(counts) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(counts))
	}
	if counts["2025-06-02"] != 5 {
		t.Fatalf("expected 5 for 2025-06-02, got %d", counts["2025-06-02"])
	}
	if counts["2025-06-01"] != 0 {
		t.Fatalf("expected 0 for 2025-06-01, got %d", counts["2025-06-01"])
	}
}

func TestParseCalendarTooltips(t *testing.T) {
	markup := `<html><body>
		<div id="day-1" data-date="2025-06-01"></div>
		<div id="day-2" data-date="2025-06-02"></div>
		<tool-tip for="day-1">No contributions on June 1st.</tool-tip>
		<tool-tip for="day-2">7 contributions on June 2nd.</tool-tip>
	</body></html>`

	counts, err := ParseCalendar(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse calendar: %v", err)
	}
	if counts["2025-06-01"] != 0 {
		t.Fatalf("expected 0 for no-contribution day, got %d", counts["2025-06-01"])
	}
	if counts["2025-06-02"] != 7 {
		t.Fatalf("expected 7, got %d", counts["2025-06-02"])
	}
}

func TestParseCalendarEmptyPage(t *testing.T) {
	counts, err := ParseCalendar(strings.NewReader(`<html><body><p>not found</p></body></html>`))
	if err != nil {
		t.Fatalf("parse calendar: %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("expected no dates, got %d", len(counts))
	}
}
