// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// RuleSetFileExt is the extension of rule set files looked up by Registry.
const RuleSetFileExt = ".yaml"

// RegistryOptions configures rule set registry behavior.
type RegistryOptions struct {
	// Dir is optional directory holding "<name>.yaml" rule set files.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// Registry resolves named string rule sets from memory and from a rules directory.
//
// In-memory sets take precedence over files. Files are parsed on first use and cached,
// including parse errors, so repeated lookups are deterministic.
type Registry struct {
	// sets stores registered and loaded rule sets by name.
	sets map[string]*cachedRuleSet
	// dir is absolute rules directory, empty when file lookup is disabled.
	dir string

	// mu guards sets access.
	mu sync.Mutex
}

// cachedRuleSet stores one rule set or a cached load error.
type cachedRuleSet struct {
	// err stores load/parse error for deterministic repeated calls.
	err error
	// rules is nil when err is set.
	rules []Rule[string]
	// wg coordinates concurrent waiters for one load attempt.
	wg sync.WaitGroup
	// loading reports whether rule set is currently being loaded by another goroutine.
	loading bool
	// registered reports in-memory origin.
	registered bool
}

// NewRegistry creates rule set registry.
func NewRegistry(opts RegistryOptions) (*Registry, error) {
	dir := strings.TrimSpace(opts.Dir)
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("abs rules dir: %w", err)
		}

		dir = abs
	}

	return &Registry{
		dir:  dir,
		sets: make(map[string]*cachedRuleSet),
	}, nil
}

// Register adds or replaces in-memory rule set.
func (r *Registry) Register(name string, rules []Rule[string]) error {
	if r == nil {
		return ErrNilRegistry
	}

	name, err := cleanRuleSetName(name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sets[name] = &cachedRuleSet{
		rules:      slices.Clone(rules),
		registered: true,
	}

	return nil
}

// Lookup returns rule set by name, loading "<dir>/<name>.yaml" when not registered.
func (r *Registry) Lookup(name string) ([]Rule[string], error) {
	if r == nil {
		return nil, ErrNilRegistry
	}

	name, err := cleanRuleSetName(name)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	cached, ok := r.sets[name]
	if ok {
		loading := cached.loading
		r.mu.Unlock()
		if loading {
			cached.wg.Wait()
		}

		return unwrapCachedRuleSet(cached)
	}

	cached = &cachedRuleSet{
		loading: true,
	}
	cached.wg.Add(1)
	r.sets[name] = cached
	r.mu.Unlock()

	rules, loadErr := r.loadRuleSet(name)

	r.mu.Lock()
	cached.rules = rules
	cached.err = loadErr
	cached.loading = false
	cached.wg.Done()
	r.mu.Unlock()

	return rules, loadErr
}

// Resolve looks up rule sets and merges them in argument order.
func (r *Registry) Resolve(names ...string) ([]Rule[string], error) {
	sets := make([][]Rule[string], 0, len(names))
	for _, name := range names {
		rules, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}

		sets = append(sets, rules)
	}

	return MergeRules(sets...), nil
}

// Names returns sorted names of registered sets and rule set files found in rules directory.
func (r *Registry) Names() ([]string, error) {
	if r == nil {
		return nil, ErrNilRegistry
	}

	seen := make(map[string]struct{})

	r.mu.Lock()
	for name, cached := range r.sets {
		if cached.registered {
			seen[name] = struct{}{}
		}
	}
	r.mu.Unlock()

	if r.dir != "" {
		entries, err := os.ReadDir(r.dir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read rules dir: %w", err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			name, ok := strings.CutSuffix(entry.Name(), RuleSetFileExt)
			if !ok {
				continue
			}

			if _, err := cleanRuleSetName(name); err == nil {
				seen[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	slices.Sort(names)
	return names, nil
}

// loadRuleSet loads and parses one rule set file.
func (r *Registry) loadRuleSet(name string) ([]Rule[string], error) {
	if r.dir == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRuleSet, name)
	}

	path := filepath.Join(r.dir, name+RuleSetFileExt)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRuleSet, name)
		}

		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	rules, err := LoadRulesFile(path)
	if err != nil {
		return nil, err
	}

	return rules, nil
}

// unwrapCachedRuleSet unwraps cached rule set entry.
func unwrapCachedRuleSet(entry *cachedRuleSet) ([]Rule[string], error) {
	if entry.err != nil {
		return nil, entry.err
	}

	return entry.rules, nil
}

// cleanRuleSetName validates rule set name usable both as key and as file base name.
func cleanRuleSetName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidRuleSetName, raw)
	}

	if strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") || filepath.IsAbs(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRuleSetName, raw)
	}

	return name, nil
}
