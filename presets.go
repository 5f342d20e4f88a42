package addqueries

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

const (
	PresetShippingLabel  = "shipping-label"
	PresetSenderIdentity = "sender-identity"
)

// QuerySet is a named, ordered list of queries. The fields are unexported
// so a preset cannot change once built; Queries hands out copies.
type QuerySet struct {
	name    string
	queries []QueryDefinition
}

func NewQuerySet(name string, queries ...QueryDefinition) QuerySet {
	return QuerySet{name: name, queries: slices.Clone(queries)}
}

func (q QuerySet) Name() string {
	return q.name
}

func (q QuerySet) Len() int {
	return len(q.queries)
}

// Queries returns the queries in preset order.
func (q QuerySet) Queries() []QueryDefinition {
	return slices.Clone(q.queries)
}

// Validate checks that every query has text and a unique, non-empty alias.
func (q QuerySet) Validate() error {
	if q.name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPreset)
	}
	if len(q.queries) == 0 {
		return fmt.Errorf("%w: %v has no queries", ErrInvalidPreset, q.name)
	}
	seen := make(map[string]int, len(q.queries))
	for i, query := range q.queries {
		if query.Text == "" {
			return fmt.Errorf("%w: %v query %d has no text", ErrInvalidPreset, q.name, i)
		}
		if query.Alias == "" {
			return fmt.Errorf("%w: %v query %d has no alias", ErrInvalidPreset, q.name, i)
		}
		if j, ok := seen[query.Alias]; ok {
			return fmt.Errorf("%w: %v alias %q used by queries %d and %d", ErrInvalidPreset, q.name, query.Alias, j, i)
		}
		seen[query.Alias] = i
	}
	return nil
}

var senderQueries = []QueryDefinition{
	{Text: "What is the Name?", Alias: "SenderName"},
	{Text: "What is the Sender's Address, usually starting with 'Ford'?", Alias: "SenderAddress"},
	{Text: "What is the Sender City?", Alias: "SenderCity"},
	{Text: "What is the Sender State?", Alias: "SenderStateProvince"},
	{Text: "What is the Sender Postal Code?", Alias: "SenderPostalCode"},
}

var recipientQueries = []QueryDefinition{
	{Text: "What is the Recipient Name?", Alias: "RecipientName"},
	{Text: "What is the Recipient Address?", Alias: "RecipientAddress"},
	{Text: "What is the Recipient Address City?", Alias: "DeliveryCity"},
	{Text: "What is the Recipient Address State?", Alias: "DeliveryStateProvince"},
	{Text: "What is the Recipient Address Postal Code?", Alias: "DeliveryPostalCode"},
}

var (
	// ShippingLabel asks for both sender and recipient of a mail piece.
	ShippingLabel = NewQuerySet(PresetShippingLabel, slices.Concat(senderQueries, recipientQueries)...)
	// SenderIdentity only asks for the sender block.
	SenderIdentity = NewQuerySet(PresetSenderIdentity, senderQueries...)
)

// Registry maps preset names to query sets. It is read-only after construction.
type Registry struct {
	sets map[string]QuerySet
}

// NewRegistry returns a registry holding the built-in presets plus sets.
// A set may not reuse the name of a built-in or of an earlier set.
func NewRegistry(sets ...QuerySet) (*Registry, error) {
	r := &Registry{sets: map[string]QuerySet{
		ShippingLabel.Name():  ShippingLabel,
		SenderIdentity.Name(): SenderIdentity,
	}}
	for _, set := range sets {
		if err := set.Validate(); err != nil {
			return nil, err
		}
		if _, ok := r.sets[set.Name()]; ok {
			return nil, fmt.Errorf("%w: duplicate preset name %q", ErrInvalidPreset, set.Name())
		}
		r.sets[set.Name()] = set
	}
	return r, nil
}

func (r *Registry) Lookup(name string) (QuerySet, error) {
	set, ok := r.sets[name]
	if !ok {
		return QuerySet{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return set, nil
}

// Names returns the registered preset names in sorted order.
func (r *Registry) Names() []string {
	names := maps.Keys(r.sets)
	slices.Sort(names)
	return names
}
