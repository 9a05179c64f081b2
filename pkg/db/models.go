package db

import "github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/core/model"

// Assignment represents a single shift record in the ledger: one attendant
// signed up for one slot. A submission produces one Assignment per selected
// slot; the manager later flips Approved on the records they accept.
type Assignment struct {
	ID        string `ssql_header:"id" ssql_type:"uuid"`
	Name      string `ssql_header:"name" ssql_type:"text"`
	Email     string `ssql_header:"email" ssql_type:"text"`
	Tshirt    string `ssql_header:"tshirt" ssql_type:"text"`
	Day       string `ssql_header:"day" ssql_type:"text"`
	Shift     string `ssql_header:"shift" ssql_type:"text"`
	Approved  bool   `ssql_header:"approved" ssql_type:"bool"`
	MaxShifts int    `ssql_header:"max_shifts" ssql_type:"int"`
}

// Slot returns the record's (day, shift) pair.
func (a Assignment) Slot() model.Slot {
	return model.Slot{Day: a.Day, Shift: a.Shift}
}
