package cli

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/jsonapi/pkg/doc"
	"github.com/matzehuels/jsonapi/pkg/fields"
	"github.com/matzehuels/jsonapi/pkg/render"
	"github.com/matzehuels/jsonapi/pkg/value"
)

// datasetFile is the TOML shape of a resource graph:
//
//	[[resources]]
//	kind = "articles"
//	id = "1"
//	attributes = { title = "Hello" }
//
//	[resources.relationships]
//	author = { kind = "users", id = "9" }
//	comments = { kind = "comments", ids = ["5", "12"] }
type datasetFile struct {
	Resources []datasetResource `toml:"resources"`
}

type datasetResource struct {
	Kind          string                `toml:"kind"`
	ID            string                `toml:"id"`
	Attributes    map[string]any        `toml:"attributes"`
	Relationships map[string]datasetRel `toml:"relationships"`
}

// datasetRel names related resources. Setting id makes the relationship
// to-one; setting ids makes it to-many.
type datasetRel struct {
	Kind string   `toml:"kind"`
	ID   string   `toml:"id"`
	IDs  []string `toml:"ids"`
}

// dataset is a loaded resource graph, indexed by identity and by type.
type dataset struct {
	nodes map[doc.Identity]*node
	kinds map[fields.Key][]*node
}

// node is one resource in the graph. It implements render.Resource.
type node struct {
	kind  fields.Key
	id    string
	attrs value.Map
	rels  []nodeRel
}

type nodeRel struct {
	name    fields.Key
	toOne   bool
	targets []*node
}

func (n *node) Kind() fields.Key { return n.kind }
func (n *node) ID() string       { return n.id }

func (n *node) ToIdent(*render.Context) (doc.Identifier, error) {
	return doc.NewIdentifier(n.kind, n.id), nil
}

func (n *node) ToObject(ctx *render.Context) (doc.Object, error) {
	obj := doc.NewObject(n.kind, n.id)
	for name, v := range n.attrs.All() {
		if ctx.Field(name) {
			obj.Attributes.Set(name, v)
		}
	}
	for _, r := range n.rels {
		if !ctx.Field(r.name) {
			continue
		}
		var rel doc.Relationship
		var err error
		if r.toOne {
			var target render.Resource
			if len(r.targets) > 0 {
				target = r.targets[0]
			}
			rel, err = render.HasOne(ctx, r.name, target)
		} else {
			rel, err = render.HasMany(ctx, r.name, r.targets)
		}
		if err != nil {
			return doc.Object{}, err
		}
		obj.Relationships.Set(r.name, rel)
	}
	return obj, nil
}

// loadDataset reads and links a TOML resource graph. Every resource named
// by a relationship must exist in the file.
func loadDataset(path string) (*dataset, error) {
	var file datasetFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	ds := &dataset{
		nodes: make(map[doc.Identity]*node),
		kinds: make(map[fields.Key][]*node),
	}

	// First pass: create every node.
	for _, res := range file.Resources {
		kind, err := fields.Parse(res.Kind)
		if err != nil {
			return nil, err
		}
		if res.ID == "" {
			return nil, fmt.Errorf("resource of type %q has no id", res.Kind)
		}

		n := &node{kind: kind, id: res.ID}
		for _, name := range sortedNames(res.Attributes) {
			key, err := fields.Parse(name)
			if err != nil {
				return nil, err
			}
			v, err := value.From(res.Attributes[name])
			if err != nil {
				return nil, err
			}
			n.attrs.Set(key, v)
		}

		identity := doc.Identity{ID: n.id, Kind: n.kind}
		if _, ok := ds.nodes[identity]; ok {
			return nil, fmt.Errorf("duplicate resource %s/%s", res.Kind, res.ID)
		}
		ds.nodes[identity] = n
		ds.kinds[kind] = append(ds.kinds[kind], n)
	}

	// Second pass: link relationships.
	for _, res := range file.Resources {
		n := ds.nodes[doc.Identity{ID: res.ID, Kind: fields.MustParse(res.Kind)}]
		for _, name := range sortedNames(res.Relationships) {
			rel := res.Relationships[name]
			key, err := fields.Parse(name)
			if err != nil {
				return nil, err
			}
			targetKind, err := fields.Parse(rel.Kind)
			if err != nil {
				return nil, err
			}

			ids := rel.IDs
			toOne := false
			if rel.ID != "" {
				ids = []string{rel.ID}
				toOne = true
			}

			targets := make([]*node, 0, len(ids))
			for _, id := range ids {
				target, ok := ds.nodes[doc.Identity{ID: id, Kind: targetKind}]
				if !ok {
					return nil, fmt.Errorf("%s/%s: relationship %q names unknown resource %s/%s",
						res.Kind, res.ID, name, rel.Kind, id)
				}
				targets = append(targets, target)
			}
			n.rels = append(n.rels, nodeRel{name: key, toOne: toOne, targets: targets})
		}
	}
	return ds, nil
}

// get returns the node with the given identity, or nil.
func (ds *dataset) get(kind fields.Key, id string) *node {
	return ds.nodes[doc.Identity{ID: id, Kind: kind}]
}

// byKind returns every node of the given type, in file order.
func (ds *dataset) byKind(kind fields.Key) []*node {
	return ds.kinds[kind]
}

// sortedNames returns the map's keys in sorted order, so attribute and
// relationship emission is deterministic.
func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
