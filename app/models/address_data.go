// Package models holds the result type the parser returns: a
// normalized, typed view over what the grammar matched.
package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// AddressTypes lists the valid values of AddressData.Type.
var AddressTypes = []string{"simple", "intersection", "between"}

// InvalidAddressType is returned by New when type is not one of
// AddressTypes.
type InvalidAddressType struct {
	Type string
}

func (e *InvalidAddressType) Error() string {
	return fmt.Sprintf("invalid address type: %q", e.Type)
}

// DoorNumber is the raw text the grammar matched for a street number:
// Value holds the matched lexemes verbatim (which may have no digits
// at all, e.g. "S/N", or carry a number label, e.g. "N° 1300"); Unit
// holds the optional unit marker text ("KM.", "kilómetro", ...).
type DoorNumber struct {
	Value string
	Unit  string
}

// AddressData is the normalized result of parsing one address: its
// shape (Type), the street name(s) involved, an optional door number,
// and an optional floor/unit description.
type AddressData struct {
	Type        string
	StreetNames []string
	DoorNumber  *DoorNumber
	Floor       string
}

// New builds an AddressData, rejecting any Type outside AddressTypes.
func New(addrType string, streetNames []string, doorNumber *DoorNumber, floor string) (*AddressData, error) {
	valid := false
	for _, t := range AddressTypes {
		if t == addrType {
			valid = true
			break
		}
	}
	if !valid {
		return nil, &InvalidAddressType{Type: addrType}
	}
	return &AddressData{
		Type:        addrType,
		StreetNames: streetNames,
		DoorNumber:  doorNumber,
		Floor:       floor,
	}, nil
}

var (
	reDecimalDoorNumber = regexp.MustCompile(`\d+[,.]\d+`)
	reIntDoorNumber     = regexp.MustCompile(`\d+`)
	reKmUnit            = regexp.MustCompile(`(?i)km|kil(o|ó)metro`)
)

// NormalizedDoorNumberValue extracts the numeric value of the door
// number: a float if the matched text carries a decimal (e.g. the "32,5"
// of "km 32,5"), an int otherwise, or ok=false if the door number has
// no digits at all (e.g. "S/N").
func (a *AddressData) NormalizedDoorNumberValue() (value any, ok bool) {
	if a.DoorNumber == nil {
		return nil, false
	}
	text := a.DoorNumber.Value
	if m := reDecimalDoorNumber.FindString(text); m != "" {
		f, err := strconv.ParseFloat(strings.Replace(m, ",", ".", 1), 64)
		if err != nil {
			return nil, false
		}
		return f, true
	}
	if m := reIntDoorNumber.FindString(text); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil, false
		}
		return n, true
	}
	return nil, false
}

// NormalizedDoorNumberUnit reports "km" if the door number's unit text
// names kilometers, or ok=false otherwise (including a plain "N°"/"Nro."
// label, which is not a unit).
func (a *AddressData) NormalizedDoorNumberUnit() (unit string, ok bool) {
	if a.DoorNumber == nil || a.DoorNumber.Unit == "" {
		return "", false
	}
	if reKmUnit.MatchString(a.DoorNumber.Unit) {
		return "km", true
	}
	return "", false
}

// ASCIIStreetNames folds every street name through an ASCII transliteration
// (e.g. "Tucumán" -> "Tucuman"), for callers that want diacritic-
// insensitive comparison or sorting. It does not alter StreetNames,
// and performs no spelling correction or lookup.
func (a *AddressData) ASCIIStreetNames() []string {
	out := make([]string, len(a.StreetNames))
	for i, name := range a.StreetNames {
		out[i] = unidecode.Unidecode(name)
	}
	return out
}

// ToMap renders the address in the test-case interchange shape: a
// plain map ready for encoding/json, mirroring the reference
// implementation's to_dict().
func (a *AddressData) ToMap() map[string]any {
	m := map[string]any{
		"type":         a.Type,
		"street_names": a.StreetNames,
	}
	// door_number is always a nested {value, unit} object, even when no
	// door number was matched, matching the reference implementation's
	// to_dict() template.
	dn := map[string]any{"value": nil, "unit": nil}
	if a.DoorNumber != nil {
		dn["value"] = a.DoorNumber.Value
		if a.DoorNumber.Unit != "" {
			dn["unit"] = a.DoorNumber.Unit
		}
	}
	m["door_number"] = dn
	if a.Floor != "" {
		m["floor"] = a.Floor
	} else {
		m["floor"] = nil
	}
	return m
}
