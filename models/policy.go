package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Policy keeps the fields the aggregations project by name; everything else
// the client sends rides along in Extra so a policy document is stored
// as-is. The custom JSON methods keep those extra fields at the top level of
// the wire shape, matching the documents as the database holds them.
type Policy struct {
	ID            bson.ObjectID  `bson:"_id,omitempty"`
	PolicyTitle   string         `bson:"policyTitle"`
	Category      string         `bson:"category,omitempty"`
	BasePremium   float64        `bson:"basePremium,omitempty"`
	CoverageRange string         `bson:"coverageRange,omitempty"`
	ImageURL      string         `bson:"imageUrl,omitempty"`
	Extra         map[string]any `bson:",inline"`
}

func (p *Policy) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	known := map[string]any{
		"id":            &p.ID,
		"policyTitle":   &p.PolicyTitle,
		"category":      &p.Category,
		"basePremium":   &p.BasePremium,
		"coverageRange": &p.CoverageRange,
		"imageUrl":      &p.ImageURL,
	}
	for name, dst := range known {
		if v, ok := raw[name]; ok {
			if err := json.Unmarshal(v, dst); err != nil {
				return err
			}
			delete(raw, name)
		}
	}

	if len(raw) == 0 {
		p.Extra = nil
		return nil
	}
	p.Extra = make(map[string]any, len(raw))
	for name, v := range raw {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return err
		}
		p.Extra[name] = val
	}
	return nil
}

func (p Policy) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+6)
	for name, v := range p.Extra {
		out[name] = v
	}
	// Named fields win over a colliding extra.
	if !p.ID.IsZero() {
		out["id"] = p.ID
	}
	out["policyTitle"] = p.PolicyTitle
	if p.Category != "" {
		out["category"] = p.Category
	}
	if p.BasePremium != 0 {
		out["basePremium"] = p.BasePremium
	}
	if p.CoverageRange != "" {
		out["coverageRange"] = p.CoverageRange
	}
	if p.ImageURL != "" {
		out["imageUrl"] = p.ImageURL
	}
	return json.Marshal(out)
}

// PolicyRef is a booking's string-typed link to a policy. Bookings store the
// hex form; it only becomes an ObjectID inside aggregation pipelines or via
// Resolve. Keeping the cast here keeps it out of the individual queries.
type PolicyRef string

func (r PolicyRef) Resolve() (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(string(r))
}

func (r PolicyRef) String() string { return string(r) }
