package country

import (
	"encoding/json"
	"io"
	"sort"
)

// Country is one entry of the static reference dataset used by the staff and
// accommodation forms. The dataset is read-only after startup.
type Country struct {
	Name      string  `json:"name"`
	PhoneCode string  `json:"phone_code"`
	States    []State `json:"states"`
}

// State is one subdivision of a Country.
type State struct {
	Name string `json:"name"`
}

// Parse decodes the countries dataset from its JSON document.
func Parse(r io.Reader) ([]Country, error) {
	var countries []Country
	if err := json.NewDecoder(r).Decode(&countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// Details returns the sorted state names and phone code for a country, or
// empty values when the country is unknown.
func Details(countries []Country, name string) (states []string, phoneCode string) {
	for _, c := range countries {
		if c.Name == name {
			states = make([]string, 0, len(c.States))
			for _, s := range c.States {
				states = append(states, s.Name)
			}
			sort.Strings(states)
			return states, c.PhoneCode
		}
	}
	return []string{}, ""
}
