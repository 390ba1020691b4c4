package term

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"ripple-cli/shared"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const postPreviewLen = 60

// FormatDate renders a server timestamp the way the feed displays dates.
// Unparseable input is shown as-is.
func FormatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("Mon, 02 Jan 2006 03:04:05 PM")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// RenderFeed prints the post list. focusIx highlights the row of a post
// just returned from the detail view (the scroll-into-view analogue); pass
// -1 for no focus.
func RenderFeed(posts []shared.Post, focusIx int) {
	if len(posts) == 0 {
		fmt.Println("Empty list")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Id", "Author", "Post", "Comments", "Created"})
	table.SetAutoWrapText(false)

	for i, p := range posts {
		row := []string{
			strconv.Itoa(i + 1),
			p.Id,
			p.User.Username,
			truncate(p.Text, postPreviewLen),
			strconv.Itoa(len(p.Comments)),
			FormatDate(p.CreatedAt),
		}

		if i == focusIx {
			colors := make([]tablewriter.Colors, len(row))
			for c := range colors {
				colors[c] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor}
			}
			table.Rich(row, colors)
		} else {
			table.Append(row)
		}
	}

	table.Render()
}

var postCardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

var postAuthorStyle = lipgloss.NewStyle().Bold(true)
var postDateStyle = lipgloss.NewStyle().Faint(true)

// RenderPost prints the detail card for one post, comments newest-first.
func RenderPost(post shared.Post) {
	name := post.User.Username
	if post.User.FirstName != "" && post.User.LastName != "" {
		name = fmt.Sprintf("%s %s", post.User.FirstName, post.User.LastName)
	}

	body := postAuthorStyle.Render(name) + "\n" +
		postDateStyle.Render(FormatDate(post.CreatedAt)) + "\n\n" +
		post.Text

	fmt.Println(postCardStyle.Render(body))

	if len(post.Comments) == 0 {
		fmt.Println("No comments yet.")
		return
	}

	fmt.Println(color.New(color.Bold).Sprintf("Comments (%d):", len(post.Comments)))
	for _, c := range post.Comments {
		fmt.Printf("  [%d] %s %s\n      %s\n",
			c.Id,
			color.New(color.Bold).Sprint(c.Username),
			color.New(color.Faint).Sprint(FormatDate(c.CreatedAt)),
			c.Text,
		)
	}
}
