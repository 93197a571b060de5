package flags

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the order in which a catalog is laid out.
type SortKey uint8

const (
	// SortByCode orders by country code. It is locale independent.
	SortByCode SortKey = iota
	// SortByName orders by display name, ignoring case and accents.
	SortByName
)

func (k SortKey) String() string {
	switch k {
	case SortByCode:
		return "code"
	case SortByName:
		return "name"
	default:
		return fmt.Sprintf("SortKey(%d)", uint8(k))
	}
}

// ParseSortKey accepts "code" or "name".
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "", "code":
		return SortByCode, nil
	case "name":
		return SortByName, nil
	}
	return 0, fmt.Errorf("flags: unknown sort key %q", s)
}

// Catalog is a read-only set of flags indexed by country code.
type Catalog struct {
	byCode map[Code]Flag
	sorted []Flag
}

// NewCatalog indexes flags. Two flags with the same code are an error.
func NewCatalog(flags ...Flag) (*Catalog, error) {
	c := &Catalog{byCode: make(map[Code]Flag, len(flags))}
	for _, f := range flags {
		if _, dup := c.byCode[f.Code()]; dup {
			return nil, fmt.Errorf("flags: %s: %w", f.Code(), ErrDuplicateCode)
		}
		c.byCode[f.Code()] = f
		c.sorted = append(c.sorted, f)
	}
	sort.Slice(c.sorted, func(i, j int) bool { return c.sorted[i].Code() < c.sorted[j].Code() })
	return c, nil
}

func (c *Catalog) Len() int { return len(c.sorted) }

// Lookup returns the flag for code.
func (c *Catalog) Lookup(code Code) (Flag, bool) {
	f, ok := c.byCode[code]
	return f, ok
}

// Get is Lookup with an ErrUnknownCode error for missing codes.
func (c *Catalog) Get(code Code) (Flag, error) {
	f, ok := c.byCode[code]
	if !ok {
		return nil, fmt.Errorf("flags: %s: %w", code, ErrUnknownCode)
	}
	return f, nil
}

// All returns the flags in ascending code order. The slice is shared and must
// not be modified.
func (c *Catalog) All() []Flag { return c.sorted }

// Sorted returns a new slice ordered by key. For SortByName, names are
// compared with the collation rules of tag; equal names fall back to code
// order.
func (c *Catalog) Sorted(key SortKey, name func(Code) string, tag language.Tag) []Flag {
	out := append([]Flag(nil), c.sorted...)
	if key != SortByName || name == nil {
		return out
	}
	col := collate.New(tag, collate.IgnoreCase, collate.IgnoreDiacritics, collate.Loose)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(name(out[i].Code()), name(out[j].Code())) < 0
	})
	return out
}

// Default returns the built-in catalog. It is built on first use and shared.
var Default = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog(builtin()...)
	if err != nil {
		panic(err)
	}
	return c
})

func builtin() []Flag {
	return []Flag{
		horizontal(40, 2.0/3, "#ED2939", "white", "#ED2939"),               // Austria
		horizontal(51, 1.0/2, "#D90012", "#0033A0", "#F2A800"),             // Armenia
		horizontal(68, 15.0/22, "#D52B1E", "#F9E300", "#007934"),           // Bolivia
		horizontal(100, 3.0/5, "white", "#00966E", "#D62612"),              // Bulgaria
		horizontal(233, 7.0/11, "#0072CE", "black", "white"),               // Estonia
		horizontal(266, 3.0/4, "#3A75C4", "#FCD116", "#009E60"),            // Gabon
		horizontal(276, 3.0/5, "#000", "#D00", "#FFCE00"),                  // Germany
		horizontal(348, 1.0/2, "#CE2939", "white", "#477050"),              // Hungary
		horizontal(360, 2.0/3, "#CE1126", "white"),                         // Indonesia
		horizontal(440, 3.0/5, "#FDB913", "#006A44", "#C1272D"),            // Lithuania
		horizontal(442, 3.0/5, "#EF3340", "white", "#00A3E0"),              // Luxembourg
		horizontal(480, 2.0/3, "#EA2839", "#1A206D", "#FFD500", "#00A551"), // Mauritius
		horizontal(492, 4.0/5, "#CE1126", "white"),                         // Monaco
		horizontal(528, 2.0/3, "#AE1C28", "white", "#21468B"),              // Netherlands
		horizontal(616, 5.0/8, "white", "#DC143C"),                         // Poland
		horizontal(643, 2.0/3, "white", "#0039A6", "#D52B1E"),              // Russia
		horizontal(694, 2.0/3, "#1EB53A", "white", "#0072C6"),              // Sierra Leone
		horizontal(804, 2.0/3, "#0057B7", "#FFD700"),                       // Ukraine
		horizontal(887, 2.0/3, "#CE1126", "white", "black"),                // Yemen
		horizontal(170, 2.0/3, "#FCD116", "#FCD116", "#003893", "#CE1126"), // Colombia

		vertical(56, 13.0/15, "black", "#FAE042", "#ED2939"),  // Belgium
		vertical(148, 2.0/3, "#002664", "#FECB00", "#C60C30"), // Chad
		vertical(250, 2.0/3, "#002395", "white", "#ED2939"),   // France
		vertical(324, 2.0/3, "#CE1126", "#FCD116", "#009460"), // Guinea
		vertical(372, 1.0/2, "#169B62", "white", "#FF883E"),   // Ireland
		vertical(380, 2.0/3, "#009246", "white", "#CE2B37"),   // Italy
		vertical(384, 2.0/3, "#F77F00", "white", "#009E60"),   // Ivory Coast
		vertical(466, 2.0/3, "#14B53A", "#FCD116", "#CE1126"), // Mali
		vertical(566, 1.0/2, "#008751", "white", "#008751"),   // Nigeria
		vertical(604, 2.0/3, "#D91023", "white", "#D91023"),   // Peru
		vertical(642, 2.0/3, "#002B7F", "#FCD116", "#CE1126"), // Romania

		disc{base{50, 3.0 / 5}, 0.45, 0.5, 0.4, "#006A4E", "#F42A41"},    // Bangladesh
		disc{base{392, 2.0 / 3}, 0.5, 0.5, 0.4, "white", "#BC002D"},      // Japan
		disc{base{585, 5.0 / 8}, 0.45, 0.5, 0.375, "#4AADD6", "#FFDE00"}, // Palau

		nordic{base{208, 28.0 / 37}, "#C8102E", 14.0 / 37, 0.5, []crossBar{
			{"white", 4.0 / 37, 4.0 / 28},
		}}, // Denmark
		nordic{base{246, 11.0 / 18}, "white", 6.5 / 18, 5.5 / 11, []crossBar{
			{"#002F6C", 3.0 / 18, 3.0 / 11},
		}}, // Finland
		nordic{base{352, 18.0 / 25}, "#02529C", 9.0 / 25, 0.5, []crossBar{
			{"white", 4.0 / 25, 4.0 / 18},
			{"#DC1E35", 2.0 / 25, 2.0 / 18},
		}}, // Iceland
		nordic{base{578, 8.0 / 11}, "#BA0C2F", 8.0 / 22, 0.5, []crossBar{
			{"white", 4.0 / 22, 4.0 / 16},
			{"#00205B", 2.0 / 22, 2.0 / 16},
		}}, // Norway
		nordic{base{752, 5.0 / 8}, "#006AA7", 6.0 / 16, 0.5, []crossBar{
			{"#FECC00", 2.0 / 16, 2.0 / 10},
		}}, // Sweden

		bandsStar{bands{base{104, 2.0 / 3}, false, []string{"#FECB00", "#34B233", "#EA2839"}}, wholeFlag, 2.0 / 3, "white"}, // Myanmar
		bandsStar{bands{base{120, 2.0 / 3}, true, []string{"#007A5E", "#CE1126", "#FCD116"}}, 1, 0.7, "#FCD116"},            // Cameroon
		bandsStar{bands{base{288, 2.0 / 3}, false, []string{"#CE1126", "#FCD116", "#006B3F"}}, 1, 1, "black"},               // Ghana
		bandsStar{bands{base{686, 2.0 / 3}, true, []string{"#00853F", "#FDEF42", "#E31B23"}}, 1, 0.7, "#00853F"},            // Senegal
		bandsStar{bands{base{704, 2.0 / 3}, false, []string{"#DA251D"}}, wholeFlag, 0.54, "#FFFF00"},                        // Vietnam
		bandsStar{bands{base{706, 2.0 / 3}, false, []string{"#4189DD"}}, wholeFlag, 0.5, "white"},                           // Somalia
		bandsStar{bands{base{854, 2.0 / 3}, false, []string{"#EF2B2D", "#009E49"}}, wholeFlag, 0.5, "#FCD116"},              // Burkina Faso

		diagonal{base{178, 2.0 / 3}, "#009543", "#DC241F", []diagonalBand{{"#FBDE4A", 0.25}}},                  // Congo
		diagonal{base{834, 2.0 / 3}, "#1EB53A", "#00A3DD", []diagonalBand{{"#FCD116", 0.32}, {"black", 0.22}}}, // Tanzania

		chile{base{152, 2.0 / 3}},
		china{base{156, 2.0 / 3}},
		czechia{base{203, 2.0 / 3}},
		benin{base{204, 2.0 / 3}},
		india{base{356, 2.0 / 3}},
		southKorea{base{410, 2.0 / 3}},
		laos{base{418, 2.0 / 3}},
		switzerland{base{756, 1}},
		turkey{base{792, 2.0 / 3}},
		unitedStates{base{840, 10.0 / 19}},
	}
}
