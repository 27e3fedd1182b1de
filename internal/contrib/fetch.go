package contrib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// ErrNoData is returned when the contribution page yields zero dated cells,
// which usually means the user does not exist or the markup changed.
var ErrNoData = errors.New("no contribution data found")

const contributionsURL = "https://github.com/users/%s/contributions?from=%s&to=%s"

var countRe = regexp.MustCompile(`(\d+)\s+contribution`)

// Fetch downloads and parses the contribution calendar for user over the
// given window. The returned series covers every date in the window, with
// dates missing from the page defaulting to zero.
func Fetch(ctx context.Context, client *http.Client, user string, start, end time.Time) (Series, error) {
	url := fmt.Sprintf(contributionsURL, user,
		start.Format("2006-01-02"), end.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Series{}, fmt.Errorf("failed to build contributions request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Series{}, fmt.Errorf("failed to fetch contributions for %q: %w", user, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Series{}, fmt.Errorf("failed to fetch contributions for %q: status %d", user, resp.StatusCode)
	}

	counts, err := ParseCalendar(resp.Body)
	if err != nil {
		return Series{}, fmt.Errorf("failed to parse contributions for %q: %w", user, err)
	}
	if len(counts) == 0 {
		return Series{}, fmt.Errorf("user %q: %w", user, ErrNoData)
	}

	return BuildSeries(start, end, counts), nil
}

// ParseCalendar extracts a date→count map from the contribution calendar
// markup. Cells carry the date in a data-date attribute; the count lives
// either in a data-count attribute or in a tool-tip element keyed to the
// cell's id ("5 contributions on ...", "No contributions on ...").
func ParseCalendar(r io.Reader) (map[string]int, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar markup: %w", err)
	}

	type cell struct {
		date  string
		id    string
		count int
		exact bool
	}
	var cells []cell
	tooltips := make(map[string]string)

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if n.Data == "tool-tip" {
				if forID := attr(n, "for"); forID != "" {
					tooltips[forID] = textContent(n)
				}
			} else if date := attr(n, "data-date"); date != "" {
				c := cell{date: date, id: attr(n, "id")}
				if raw := attr(n, "data-count"); raw != "" {
					if v, err := strconv.Atoi(raw); err == nil {
						c.count = v
						c.exact = true
					}
				}
				cells = append(cells, c)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(doc)

	counts := make(map[string]int, len(cells))
	for _, c := range cells {
		if !c.exact {
			if m := countRe.FindStringSubmatch(tooltips[c.id]); m != nil {
				c.count, _ = strconv.Atoi(m[1])
			}
		}
		counts[c.date] = c.count
	}
	return counts, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(n)
	return strings.TrimSpace(sb.String())
}
