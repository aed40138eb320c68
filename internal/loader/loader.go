// Package loader is the peripheral collaborator that turns a list of file
// paths into a source list ready for internal/render: it reads files
// through afero (so tests can swap in an in-memory filesystem), derives
// FILENAME from each path, and computes the handful of reserved globals
// that depend on the whole list at once — FILENAME_FIRST/LAST, DATE_FIRST/
// LAST, FILTER_TAG filtering, and FILTER_PAGE/FILTER_PER_PAGE pagination
// (spec §6, §12).
package loader

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/gopherblog/blogc/internal/blogcerrs"
	"github.com/gopherblog/blogc/internal/container"
	"github.com/gopherblog/blogc/internal/source"
)

const defaultPerPage = 10

// LoadSources reads and parses every path in paths, in order, using fs.
// Each resulting source map is seeded with FILENAME. A read or parse
// failure on any file aborts the whole load, wrapped in a LoaderError
// naming the offending path.
func LoadSources(fs afero.Fs, paths []string) ([]*container.Map, error) {
	sources := make([]*container.Map, 0, len(paths))
	for _, p := range paths {
		data, err := afero.ReadFile(fs, p)
		if err != nil {
			return nil, &blogcerrs.LoaderError{Path: p, Err: err}
		}
		m, err := source.Parse(string(data))
		if err != nil {
			return nil, &blogcerrs.LoaderError{Path: p, Err: err}
		}
		m.Set("FILENAME", filenameOf(p))
		sources = append(sources, m)
	}
	return sources, nil
}

// filenameOf strips a path's directory prefix and final extension, e.g.
// "posts/2026-07-31-hello.txt" -> "2026-07-31-hello".
func filenameOf(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Prepare applies FILTER_TAG filtering and FILTER_PAGE/FILTER_PER_PAGE
// pagination to sources, and sets the reserved globals that summarize the
// resulting list (FILENAME_FIRST/LAST, DATE_FIRST/LAST, and, when
// pagination is active because global defines FILTER_PAGE, CURRENT_PAGE/
// PREVIOUS_PAGE/NEXT_PAGE/FIRST_PAGE/LAST_PAGE) directly on global. It returns the filtered-and-paginated
// source list the renderer should use, and a non-nil warning if only some
// of the sources define DATE.
func Prepare(sources []*container.Map, global *container.Map) ([]*container.Map, error) {
	filtered := filterByTag(sources, global)

	withDate := 0
	for _, s := range filtered {
		if _, ok := s.Get("DATE"); ok {
			withDate++
		}
	}
	var warning error
	if withDate > 0 && withDate < len(filtered) {
		warning = &dateCoverageWarning{total: len(filtered), withDate: withDate}
	}

	paged := filtered
	if _, ok := global.Get("FILTER_PAGE"); ok {
		page, perPage := paginationParams(global)
		paged = paginate(filtered, page, perPage)
		setPaginationGlobals(global, len(filtered), page, perPage)
	}

	if len(paged) > 0 {
		first, _ := paged[0].Get("FILENAME")
		last, _ := paged[len(paged)-1].Get("FILENAME")
		global.Set("FILENAME_FIRST", first)
		global.Set("FILENAME_LAST", last)
		if d, ok := paged[0].Get("DATE"); ok {
			global.Set("DATE_FIRST", d)
		}
		if d, ok := paged[len(paged)-1].Get("DATE"); ok {
			global.Set("DATE_LAST", d)
		}
	}

	return paged, warning
}

func filterByTag(sources []*container.Map, global *container.Map) []*container.Map {
	tag, ok := global.Get("FILTER_TAG")
	if !ok || tag == "" {
		return sources
	}
	var out []*container.Map
	for _, s := range sources {
		tags, _ := s.Get("TAGS")
		for _, t := range strings.Split(tags, ",") {
			if strings.TrimSpace(t) == tag {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// paginationParams parses FILTER_PAGE/FILTER_PER_PAGE as permissively as
// strtol: an unparsable or non-positive value silently falls back to the
// default (1 for the page, 10 for the page size).
func paginationParams(global *container.Map) (page, perPage int) {
	page = 1
	perPage = defaultPerPage
	if v, ok := global.Get("FILTER_PAGE"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			page = n
		}
	}
	if v, ok := global.Get("FILTER_PER_PAGE"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			perPage = n
		}
	}
	return page, perPage
}

func paginate(sources []*container.Map, page, perPage int) []*container.Map {
	if len(sources) == 0 {
		return sources
	}
	start := (page - 1) * perPage
	if start >= len(sources) {
		return nil
	}
	end := start + perPage
	if end > len(sources) {
		end = len(sources)
	}
	return sources[start:end]
}

func setPaginationGlobals(global *container.Map, total, page, perPage int) {
	if total == 0 {
		return
	}
	lastPage := int(math.Ceil(float64(total) / float64(perPage)))
	global.Set("CURRENT_PAGE", strconv.Itoa(page))
	global.Set("FIRST_PAGE", "1")
	global.Set("LAST_PAGE", strconv.Itoa(lastPage))
	if page > 1 {
		global.Set("PREVIOUS_PAGE", strconv.Itoa(page-1))
	}
	if page < lastPage {
		global.Set("NEXT_PAGE", strconv.Itoa(page+1))
	}
}

type dateCoverageWarning struct {
	total    int
	withDate int
}

func (w *dateCoverageWarning) Error() string {
	return "only " + strconv.Itoa(w.withDate) + " of " + strconv.Itoa(w.total) +
		" sources define DATE; listing order/date globals may be inconsistent"
}
