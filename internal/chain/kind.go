package chain

import (
	"fmt"
	"strings"

	"topic-indexer/internal/marc"
)

//go:generate go tool stringer -type=SubjectKind -trimprefix=Subject -output=kind_string.go
//go:generate go tool stringer -type=Filter -trimprefix=Filter -output=filter_string.go

// SubjectKind classifies a subject field.
type SubjectKind int

const (
	// SubjectNone is any field that is neither a 689 chain nor local data.
	SubjectNone SubjectKind = iota
	// SubjectLocal is a local data field that is not a local 689 subject.
	SubjectLocal
	SubjectOrdinary
	SubjectTime
	SubjectRegion
	SubjectGenre
	SubjectCorporation
)

const subjectChainTag = "689"

// Classify returns the subject kind of f.
//
// 689 fields are classified by $q (or $d): "z" time, "g" region, "f" genre
// ($q only). Local fields whose $0 starts with 689 carry the kind in $a:
// "z", "g", "f", "k" (corporation) or "s" (ordinary).
func Classify(f marc.Field) SubjectKind {
	switch {
	case f.Tag == subjectChainTag:
		return classifyChain(f)
	case f.HasLocalTag(subjectChainTag):
		return classifyLocal(f)
	case f.IsLocal():
		return SubjectLocal
	default:
		return SubjectNone
	}
}

func classifyChain(f marc.Field) SubjectKind {
	q := f.SubfieldData('q')
	d := f.SubfieldData('d')

	switch {
	case q == "z" || d == "z":
		return SubjectTime
	case q == "g" || d == "g":
		return SubjectRegion
	case q == "f":
		return SubjectGenre
	default:
		return SubjectOrdinary
	}
}

func classifyLocal(f marc.Field) SubjectKind {
	switch strings.TrimSpace(f.SubfieldData('a')) {
	case "z":
		return SubjectTime
	case "g":
		return SubjectRegion
	case "f":
		return SubjectGenre
	case "k":
		return SubjectCorporation
	case "s":
		return SubjectOrdinary
	default:
		return SubjectLocal
	}
}

// Filter restricts extraction to a subset of subject kinds.
type Filter int

const (
	// FilterNone admits every field.
	FilterNone Filter = iota
	// FilterOrdinary admits ordinary subjects and non-subject fields.
	FilterOrdinary
	// FilterTime admits time subjects, other local data and non-subject fields.
	FilterTime
	// FilterRegion admits region subjects, other local data and non-subject fields.
	FilterRegion
	// FilterGenre admits genre subjects, other local data and non-subject fields.
	FilterGenre
)

// Admits reports whether fields of kind k pass the filter.
func (f Filter) Admits(k SubjectKind) bool {
	switch f {
	case FilterNone:
		return true
	case FilterOrdinary:
		return k == SubjectNone || k == SubjectOrdinary
	case FilterTime:
		return k == SubjectNone || k == SubjectLocal || k == SubjectTime
	case FilterRegion:
		return k == SubjectNone || k == SubjectLocal || k == SubjectRegion
	case FilterGenre:
		return k == SubjectNone || k == SubjectLocal || k == SubjectGenre
	default:
		return false
	}
}

// ParseFilter returns the filter with the given name, ignoring case.
func ParseFilter(name string) (Filter, error) {
	for f := FilterNone; f <= FilterGenre; f++ {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}

	return FilterNone, fmt.Errorf("unknown filter %q", name)
}
