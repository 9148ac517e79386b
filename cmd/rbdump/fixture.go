package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/assoc"
	"github.com/npillmayer/assoc/hamt"
	"github.com/npillmayer/assoc/interval"
	"github.com/npillmayer/assoc/omap"
	"gopkg.in/yaml.v3"
)

// Fixture is the YAML description of a container to dump.
//
//	entries:              # ordered maps
//	  - {key: 4, value: d}
//	intervals:            # interval maps
//	  - {lo: 0, hi: 10, value: foo}
//	words:                # tries
//	  hello: world
//	delete: [4]           # keys, or spans for interval maps
//	query: {lo: 5, hi: 5} # overlap query for interval maps
type Fixture struct {
	Entries   []Entry           `yaml:"entries"`
	Intervals []Span            `yaml:"intervals"`
	Words     map[string]string `yaml:"words"`
	Delete    yaml.Node         `yaml:"delete"`
	Query     *Span             `yaml:"query"`
}

// Entry is a key/value pair of an ordered map.
type Entry struct {
	Key   int    `yaml:"key"`
	Value string `yaml:"value"`
}

// Span is a closed interval, optionally with a value.
type Span struct {
	Lo    int    `yaml:"lo"`
	Hi    int    `yaml:"hi"`
	Value string `yaml:"value,omitempty"`
}

func (s Span) interval() interval.Interval[int] {
	return interval.Closed(s.Lo, s.Hi)
}

func loadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := &Fixture{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	return f, nil
}

func (f *Fixture) orderedMap() (*omap.Map[int, string], error) {
	m := omap.New[int, string]()
	for _, e := range f.Entries {
		m.Set(e.Key, e.Value)
	}
	var keys []int
	if err := f.deletions(&keys); err != nil {
		return nil, err
	}
	for _, k := range keys {
		m.Delete(k)
	}
	return m, nil
}

func (f *Fixture) intervalMap() (*interval.Map[int, string], error) {
	m := interval.New[int, string]()
	for _, s := range f.Intervals {
		if s.Lo > s.Hi {
			return nil, fmt.Errorf("%w: interval [%d,%d]", assoc.ErrIllegalArguments, s.Lo, s.Hi)
		}
		m.Set(s.interval(), s.Value)
	}
	var spans []Span
	if err := f.deletions(&spans); err != nil {
		return nil, err
	}
	for _, s := range spans {
		m.Delete(s.interval())
	}
	return m, nil
}

func (f *Fixture) trie() (hamt.Trie[string], error) {
	t := hamt.New[string]()
	for k, v := range f.Words {
		t = t.Set(k, v)
	}
	var keys []string
	if err := f.deletions(&keys); err != nil {
		return t, err
	}
	for _, k := range keys {
		t, _ = t.Delete(k)
	}
	return t, nil
}

// deletions decodes the delete list into the key type of the container.
func (f *Fixture) deletions(keys any) error {
	if f.Delete.Kind == 0 {
		return nil
	}
	if err := f.Delete.Decode(keys); err != nil {
		return fmt.Errorf("%w: delete list: %v", assoc.ErrIllegalArguments, err)
	}
	return nil
}
