// Package airports holds the fixed table of supported airports.
package airports

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
	"gopkg.in/yaml.v3"
)

//go:embed airports.yaml
var embeddedTable []byte

type table struct {
	Airports []models.Airport `yaml:"airports"`
}

type Registry struct {
	names    map[models.IATACode]string
	airports []models.Airport
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded airport table.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Parse(embeddedTable)
		if err != nil {
			panic("cannot parse embedded airports table: " + err.Error())
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

func Parse(data []byte) (*Registry, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode airports yaml: %w", err)
	}
	return New(t.Airports)
}

func New(list []models.Airport) (*Registry, error) {
	r := &Registry{
		names:    make(map[models.IATACode]string, len(list)),
		airports: make([]models.Airport, 0, len(list)),
	}
	for _, a := range list {
		code := models.IATACode(strings.ToUpper(strings.TrimSpace(string(a.Code))))
		if len(code) != 3 {
			return nil, fmt.Errorf("airport code %q must be 3 letters", a.Code)
		}
		if _, dup := r.names[code]; dup {
			return nil, fmt.Errorf("duplicate airport code %q", code)
		}
		r.names[code] = a.Name
		r.airports = append(r.airports, models.Airport{Code: code, Name: a.Name})
	}
	sort.Slice(r.airports, func(i, j int) bool { return r.airports[i].Code < r.airports[j].Code })
	return r, nil
}

func (r *Registry) Lookup(code string) (string, bool) {
	if len(code) != 3 {
		return "", false
	}
	name, ok := r.names[models.IATACode(strings.ToUpper(code))]
	return name, ok
}

func (r *Registry) IsValid(code string) bool {
	_, ok := r.Lookup(code)
	return ok
}

func (r *Registry) All() []models.Airport {
	out := make([]models.Airport, len(r.airports))
	copy(out, r.airports)
	return out
}

func Lookup(code string) (string, bool) {
	return Default().Lookup(code)
}

func IsValid(code string) bool {
	return Default().IsValid(code)
}
