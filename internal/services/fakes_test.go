package services

import (
	"context"
	"encoding/json"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/pc0808/easel/internal/domain"
)

// fakeCollection is an in-memory domain.Collection for service tests. It
// mirrors the store's semantics: assigned identity, advancing update
// timestamps, containment filters, conditional updates.
type fakeCollection[T any] struct {
	entries []*fakeEntry[T]
	clock   time.Time
	err     error // when set, every operation fails with it
}

type fakeEntry[T any] struct {
	doc     *T
	id      domain.ID
	updated time.Time
}

func newFakeCollection[T any]() *fakeCollection[T] {
	return &fakeCollection[T]{clock: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeCollection[T]) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

type metaSetter interface {
	SetMeta(id domain.ID, created, updated time.Time)
}

func (f *fakeCollection[T]) CreateOne(_ context.Context, doc *T) (domain.ID, error) {
	if f.err != nil {
		return domain.ID{}, f.err
	}
	id := domain.NewID()
	ts := f.tick()
	if m, ok := any(doc).(metaSetter); ok {
		m.SetMeta(id, ts, ts)
	}
	f.entries = append(f.entries, &fakeEntry[T]{doc: cloneDoc(doc), id: id, updated: ts})
	return id, nil
}

func (f *fakeCollection[T]) ReadOne(_ context.Context, filter domain.Filter) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.entries {
		if docMatches(e.doc, filter) {
			return cloneDoc(e.doc), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCollection[T]) ReadMany(_ context.Context, filter domain.Filter, opts domain.ReadOptions) ([]*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	matched := make([]*fakeEntry[T], 0)
	for _, e := range f.entries {
		if docMatches(e.doc, filter) && docLikes(e.doc, opts.Like) {
			matched = append(matched, e)
		}
	}
	slices.SortFunc(matched, func(a, b *fakeEntry[T]) int {
		return b.updated.Compare(a.updated)
	})
	docs := make([]*T, 0, len(matched))
	for _, e := range matched {
		docs = append(docs, cloneDoc(e.doc))
	}
	return docs, nil
}

func (f *fakeCollection[T]) UpdateOne(_ context.Context, filter domain.Filter, patch domain.Patch) error {
	if f.err != nil {
		return f.err
	}
	for _, e := range f.entries {
		if docMatches(e.doc, filter) {
			f.apply(e, patch)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCollection[T]) UpdateOneIf(_ context.Context, filter domain.Filter, unchangedSince time.Time, patch domain.Patch) error {
	if f.err != nil {
		return f.err
	}
	for _, e := range f.entries {
		if docMatches(e.doc, filter) {
			if !e.updated.Equal(unchangedSince) {
				return domain.ErrConflict
			}
			f.apply(e, patch)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCollection[T]) DeleteOne(_ context.Context, filter domain.Filter) error {
	if f.err != nil {
		return f.err
	}
	for i, e := range f.entries {
		if docMatches(e.doc, filter) {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCollection[T]) DeleteMany(_ context.Context, filter domain.Filter) error {
	if f.err != nil {
		return f.err
	}
	kept := f.entries[:0]
	for _, e := range f.entries {
		if !docMatches(e.doc, filter) {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func (f *fakeCollection[T]) apply(e *fakeEntry[T], patch domain.Patch) {
	m := toJSONMap(e.doc)
	for k, v := range patch {
		m[k] = jsonValue(v)
	}
	ts := f.tick()
	m["dateUpdated"] = ts
	data, _ := json.Marshal(m)
	doc := new(T)
	_ = json.Unmarshal(data, doc)
	e.doc = doc
	e.updated = ts
}

func cloneDoc[T any](doc *T) *T {
	data, _ := json.Marshal(doc)
	out := new(T)
	_ = json.Unmarshal(data, out)
	return out
}

func toJSONMap(doc any) map[string]any {
	data, _ := json.Marshal(doc)
	var m map[string]any
	_ = json.Unmarshal(data, &m)
	return m
}

func jsonValue(v any) any {
	data, _ := json.Marshal(v)
	var out any
	_ = json.Unmarshal(data, &out)
	return out
}

// docMatches mimics JSONB containment: scalar values compare equal, slice
// values require every element to be present in the document's array.
func docMatches[T any](doc *T, filter domain.Filter) bool {
	if len(filter) == 0 {
		return true
	}
	m := toJSONMap(doc)
	for k, want := range filter {
		got, ok := m[k]
		if !ok {
			return false
		}
		wv := jsonValue(want)
		if wantArr, isArr := wv.([]any); isArr {
			gotArr, ok := got.([]any)
			if !ok {
				return false
			}
			for _, w := range wantArr {
				if !slices.ContainsFunc(gotArr, func(g any) bool { return reflect.DeepEqual(w, g) }) {
					return false
				}
			}
			continue
		}
		if !reflect.DeepEqual(wv, got) {
			return false
		}
	}
	return true
}

func docLikes[T any](doc *T, like map[string]string) bool {
	if len(like) == 0 {
		return true
	}
	m := toJSONMap(doc)
	for k, sub := range like {
		s, ok := m[k].(string)
		if !ok || !strings.Contains(strings.ToLower(s), strings.ToLower(sub)) {
			return false
		}
	}
	return true
}

// fakeHasher is a deterministic PasswordHasher for tests.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) {
	return salt + "|" + password, nil
}

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+"|"+password {
		return domain.ErrNotAllowed
	}
	return nil
}
