package query

import (
	"fmt"
	"time"
)

// Kind tags a cache key with the query that produced it. Invalidation rules
// operate on kinds, so every read has to go through one of the constructors
// below rather than building ad hoc key strings.
type Kind string

const (
	KindAll    Kind = "all"
	KindDetail Kind = "detail"
	KindToday  Kind = "today"
	KindWeek   Kind = "week"
	KindPast   Kind = "past"
	KindByDate Kind = "byDate"
	KindRange  Kind = "range"
	KindCount  Kind = "count"
)

// Key identifies one cached query result: the kind plus whatever filter
// parameters that kind carries. Distinct filter combinations cache
// independently.
type Key struct {
	Kind   Kind
	ID     uint
	Search string
	Date   string
	Start  string
	End    string
	Year   int
	Week   int
}

const dayFormat = "2006-01-02"

func AllKey() Key            { return Key{Kind: KindAll} }
func TodayKey() Key          { return Key{Kind: KindToday} }
func CountKey() Key          { return Key{Kind: KindCount} }
func DetailKey(id uint) Key  { return Key{Kind: KindDetail, ID: id} }
func PastKey(search string) Key {
	return Key{Kind: KindPast, Search: search}
}

// WeekKey keys a week query by its search text and the ISO week of the
// reference date, so different weeks cache independently.
func WeekKey(search string, ref time.Time) Key {
	if ref.IsZero() {
		ref = time.Now()
	}
	year, week := ref.ISOWeek()
	return Key{Kind: KindWeek, Search: search, Year: year, Week: week}
}

func ByDateKey(date time.Time) Key {
	return Key{Kind: KindByDate, Date: date.Format(dayFormat)}
}

func RangeKey(start, end time.Time) Key {
	return Key{Kind: KindRange, Start: start.Format(dayFormat), End: end.Format(dayFormat)}
}

// String renders the canonical cache-key form. Keys of one kind share the
// prefix returned by prefix(kind), which is what kind-level invalidation
// matches on.
func (k Key) String() string {
	switch k.Kind {
	case KindDetail:
		return fmt.Sprintf("%s/%d", prefix(k.Kind), k.ID)
	case KindWeek:
		return fmt.Sprintf("%s/%d-W%02d?q=%s", prefix(k.Kind), k.Year, k.Week, k.Search)
	case KindPast:
		return fmt.Sprintf("%s?q=%s", prefix(k.Kind), k.Search)
	case KindByDate:
		return fmt.Sprintf("%s/%s", prefix(k.Kind), k.Date)
	case KindRange:
		return fmt.Sprintf("%s/%s..%s", prefix(k.Kind), k.Start, k.End)
	default:
		return prefix(k.Kind)
	}
}

func prefix(kind Kind) string {
	return "sessions/" + string(kind)
}
