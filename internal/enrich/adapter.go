package enrich

import "encoding/json"

// personRecord is the normalized internal shape for a Lusha person payload.
type personRecord struct {
	PhoneNumbers   []lushaPhone `json:"phoneNumbers"`
	EmailAddresses []lushaEmail `json:"emailAddresses"`
}

type lushaPhone struct {
	Number              string `json:"number"`
	InternationalNumber string `json:"internationalNumber"`
	PhoneType           string `json:"phoneType"`
}

type lushaEmail struct {
	Email string `json:"email"`
}

// extractPersonRecord probes the known nesting variants of a Lusha response
// in order and returns the first person record found, or nil. The provider's
// shape is not stable across call styles, so declaring "no data" requires
// all probes to miss.
//
// Probed shapes, in order:
//  1. {"contact": {"data": {...}}}
//  2. {"data": {...}}
//  3. {"phoneNumbers": [...], ...} (record at the root)
func extractPersonRecord(raw json.RawMessage) *personRecord {
	if len(raw) == 0 {
		return nil
	}

	var nested struct {
		Contact *struct {
			Data *personRecord `json:"data"`
		} `json:"contact"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil &&
		nested.Contact != nil && nested.Contact.Data != nil {
		return nested.Contact.Data
	}

	var wrapped struct {
		Data *personRecord `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data
	}

	// Root-level record: only counts when the phoneNumbers key is present,
	// otherwise any JSON object would match.
	var root struct {
		PhoneNumbers   *[]lushaPhone `json:"phoneNumbers"`
		EmailAddresses []lushaEmail  `json:"emailAddresses"`
	}
	if err := json.Unmarshal(raw, &root); err == nil && root.PhoneNumbers != nil {
		return &personRecord{
			PhoneNumbers:   *root.PhoneNumbers,
			EmailAddresses: root.EmailAddresses,
		}
	}

	return nil
}
