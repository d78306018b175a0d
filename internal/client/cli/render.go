package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/vidhub/internal/client/models"
	"github.com/dmitrijs2005/vidhub/internal/client/services"
)

// indentWidth converts tree indentation units into terminal columns.
const indentWidth = 6

// formatCount shortens view and like counters: 950, 1.2K, 3.4M.
func formatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return trimZero(float64(n)/1_000_000) + "M"
	case n >= 1_000:
		return trimZero(float64(n)/1_000) + "K"
	default:
		return strconv.Itoa(n)
	}
}

func trimZero(f float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(f, 'f', 1, 64), ".0")
}

func formatDuration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	h, m, s := int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func when(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func renderVideos(w io.Writer, videos []models.Video) {
	if len(videos) == 0 {
		fmt.Fprintln(w, "No videos found.")
		return
	}
	for _, v := range videos {
		fmt.Fprintf(w, "[%s] %s (%s)\n", v.ID, v.Title, formatDuration(v.Duration))
		fmt.Fprintf(w, "    %s · %s views · %s\n", v.Owner.UserName, formatCount(v.Views), when(v.CreatedAt))
	}
}

func renderChannel(w io.Writer, page *services.ChannelPage) {
	ch := page.Channel
	fmt.Fprintf(w, "%s (@%s)\n", ch.DisplayName(), ch.UserName)
	line := fmt.Sprintf("%s subscribers · %s subscribed", formatCount(ch.SubscribersCount), formatCount(ch.ChannelsSubscribedTo))
	if ch.IsSubscribed {
		line += " · subscribed"
	}
	fmt.Fprintln(w, line)
	renderVideos(w, page.Videos)
}

func renderVideo(w io.Writer, st services.WatchState) {
	v := st.Video
	fmt.Fprintf(w, "%s\n", v.Title)
	fmt.Fprintf(w, "%s · %s views · %s\n", v.Owner.UserName, formatCount(v.Views), when(v.CreatedAt))
	if v.Description != "" {
		fmt.Fprintln(w, v.Description)
	}
	renderVideoActions(w, st)
}

func mark(on bool, label string) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}

func renderVideoActions(w io.Writer, st services.WatchState) {
	fmt.Fprintf(w, "♥ %s  %s  %s  %s  %s\n",
		formatCount(st.Likes),
		mark(st.Liked, "liked"),
		mark(st.Disliked, "disliked"),
		mark(st.Saved, "saved"),
		mark(st.Subscribed, "subscribed"),
	)
}

func renderTree(w io.Writer, nodes []*services.CommentNode) {
	if len(nodes) == 0 {
		fmt.Fprintln(w, "No comments yet.")
		return
	}
	for _, n := range nodes {
		renderNode(w, n)
	}
}

func renderNode(w io.Writer, n *services.CommentNode) {
	pad := strings.Repeat(" ", n.Indent/indentWidth)
	c := n.Comment

	fmt.Fprintf(w, "%s[%s] %s · %s\n", pad, c.ID, c.Owner.UserName, when(c.CreatedAt))
	for _, line := range strings.Split(c.Content, "\n") {
		fmt.Fprintf(w, "%s  %s\n", pad, line)
	}

	status := fmt.Sprintf("♥ %d", c.Likes)
	if n.Expandable {
		switch g := n.Replies; {
		case g != nil && g.Loading:
			status += " · Loading..."
		case g != nil && g.Open:
			status += fmt.Sprintf(" · Hide %d replies", c.Replies)
		default:
			status += fmt.Sprintf(" · View %d replies", c.Replies)
		}
	}
	fmt.Fprintf(w, "%s  %s\n", pad, status)

	if n.Composing {
		fmt.Fprintf(w, "%s  ✎ replying: %s\n", pad, n.Draft)
	}
	if n.Replies != nil && n.Replies.Err != "" {
		fmt.Fprintf(w, "%s  ✖ %s\n", pad, n.Replies.Err)
	}

	for _, child := range n.Children {
		renderNode(w, child)
	}
}
