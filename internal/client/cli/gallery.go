package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/lightgallery/internal/client/client"
	"github.com/dmitrijs2005/lightgallery/internal/client/format"
)

const pageSize = 10

// pageArg parses an optional page number; anything unparsable is page 1.
func pageArg(args []string) int {
	if len(args) == 0 {
		return 1
	}
	p, err := strconv.Atoi(args[0])
	if err != nil || p < 1 {
		return 1
	}
	return p
}

func (a *App) report(err error) error {
	fmt.Fprintln(a.out, "Error:", client.UserMessage(err))
	return err
}

func (a *App) Albums(ctx context.Context, args []string) error {
	page, err := a.api.ListAlbums(ctx, pageArg(args), pageSize, "")
	if err != nil {
		return a.report(err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tACCESS\tIMAGES\tCREATED")
	for _, al := range page.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			al.ID, format.Truncate(al.Name, 30), al.Permission, al.ImageCount,
			format.ParseDateTime(al.CreatedAt, "YYYY-MM-DD"))
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "page %d, %d album(s) total\n", page.Page, page.Total)
	return nil
}

func (a *App) Posts(ctx context.Context, args []string) error {
	page, err := a.api.ListPosts(ctx, pageArg(args), pageSize, client.PostFilter{Sort: "created_at", Order: "desc"})
	if err != nil {
		return a.report(err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTAGS\tCREATED")
	for _, p := range page.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			p.ID, format.Truncate(p.Title, 40), strings.Join(p.Tags, ","),
			format.ParseDateTime(p.CreatedAt, "YYYY-MM-DD HH:mm"))
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "page %d, %d post(s) total\n", page.Page, page.Total)
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: search <keyword>")
		return nil
	}
	res, err := a.api.FullTextSearch(ctx, strings.Join(args, " "), "", 1, pageSize)
	if err != nil {
		return a.report(err)
	}
	if len(res.Items) == 0 {
		fmt.Fprintln(a.out, "Nothing found")
		return nil
	}
	for _, h := range res.Items {
		fmt.Fprintf(a.out, "[%s] %s  %s\n", h.Type, format.Truncate(h.Title, 50), format.Truncate(h.Snippet, 60))
	}
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	st, err := a.api.SystemStats(ctx)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "users: %d\nalbums: %d\nimages: %d\nposts: %d\nstorage: %s\n",
		st.UserCount, st.AlbumCount, st.ImageCount, st.PostCount, format.FileSize(st.StorageUse))
	return nil
}

// Metrics prints the client's request counters.
func (a *App) Metrics(ctx context.Context) error {
	if a.registry == nil {
		fmt.Fprintln(a.out, "metrics disabled")
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("%s %g", name, m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(a.out, l)
	}
	return nil
}
