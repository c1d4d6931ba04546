package entities

import "encoding/json"

// outcomeWire is the JSON wire format for a single check outcome. The error
// travels as its bare message string; decoding reconstructs a minimal
// ValidationError from it and nothing more.
type outcomeWire struct {
	Label  string `json:"label"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// reportWire is the JSON wire format for a check group report.
type reportWire struct {
	Group   string        `json:"group"`
	Status  string        `json:"status"`
	Results []outcomeWire `json:"results"`
}

// MarshalJSON implements json.Marshaler.
func (o Outcome) MarshalJSON() ([]byte, error) {
	w := outcomeWire{
		Label:  o.Label,
		Status: string(o.normalizedStatus()),
	}
	if o.Err != nil {
		w.Error = o.Err.Message
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. Unknown status text degrades
// to SKIP; an absent error field yields an outcome with no attached error
// regardless of the declared status.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var w outcomeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	o.Label = w.Label
	o.Status = ParseStatus(w.Status)
	o.Err = nil
	if w.Error != "" {
		o.Err = NewValidationError(w.Error)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Report) MarshalJSON() ([]byte, error) {
	w := reportWire{
		Group:   r.Group,
		Status:  string(r.normalizedStatus()),
		Results: make([]outcomeWire, 0, len(r.Results)),
	}
	for _, o := range r.Results {
		ow := outcomeWire{Label: o.Label, Status: string(o.normalizedStatus())}
		if o.Err != nil {
			ow.Error = o.Err.Message
		}
		w.Results = append(w.Results, ow)
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Report) UnmarshalJSON(data []byte) error {
	var w reportWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.Group = w.Group
	r.Status = ParseStatus(w.Status)
	r.Results = nil
	if len(w.Results) > 0 {
		r.Results = make([]Outcome, 0, len(w.Results))
		for _, ow := range w.Results {
			o := Outcome{Label: ow.Label, Status: ParseStatus(ow.Status)}
			if ow.Error != "" {
				o.Err = NewValidationError(ow.Error)
			}
			r.Results = append(r.Results, o)
		}
	}
	return nil
}

// normalizedStatus maps the zero Status value to SKIP so a never-evaluated
// outcome or report encodes as a valid status literal.
func (o Outcome) normalizedStatus() Status {
	if o.Status == "" {
		return StatusSkip
	}
	return o.Status
}

func (r Report) normalizedStatus() Status {
	if r.Status == "" {
		return StatusSkip
	}
	return r.Status
}
