// Package letterfreq provides named letter-frequency profiles used to
// sample filler letters restricted to a profile's alphabet.
package letterfreq

import (
	"github.com/mkoehn/suchselgen/internal/dependencies/random"
	"github.com/mkoehn/suchselgen/internal/model"
	"github.com/mkoehn/suchselgen/internal/services/weighted"
)

// Table samples letters from one named frequency profile
type Table struct {
	name   string
	choice *weighted.Choice
}

// Relative letter frequencies per 1000 letters of running text.
var profiles = map[string]map[string]float64{
	"english": {
		"A": 82, "B": 15, "C": 28, "D": 43, "E": 127, "F": 22, "G": 20,
		"H": 61, "I": 70, "J": 2, "K": 8, "L": 40, "M": 24, "N": 67,
		"O": 75, "P": 19, "Q": 1, "R": 60, "S": 63, "T": 91, "U": 28,
		"V": 10, "W": 24, "X": 2, "Y": 20, "Z": 1,
	},
	"german": {
		"A": 65, "B": 19, "C": 27, "D": 51, "E": 174, "F": 17, "G": 30,
		"H": 48, "I": 76, "J": 3, "K": 12, "L": 34, "M": 25, "N": 98,
		"O": 25, "P": 8, "Q": 1, "R": 70, "S": 73, "T": 62, "U": 44,
		"V": 7, "W": 19, "X": 1, "Y": 1, "Z": 11,
		"Ä": 5, "Ö": 3, "Ü": 7,
	},
	"uniform": uniformProfile(),
}

func uniformProfile() map[string]float64 {
	p := make(map[string]float64, 26)
	for letter := 'A'; letter <= 'Z'; letter++ {
		p[string(letter)] = 1
	}
	return p
}

// Profiles lists the available profile names
func Profiles() []string {
	return []string{"english", "german", "uniform"}
}

// Profile returns the table for a named profile
func Profile(name string) (*Table, error) {
	weights, ok := profiles[name]
	if !ok {
		return nil, model.ErrUnknownProfile
	}
	choice, err := weighted.New(weights)
	if err != nil {
		return nil, err
	}
	return &Table{name: name, choice: choice}, nil
}

// Name returns the profile name
func (t *Table) Name() string {
	return t.name
}

// Alphabet returns the letters the table can produce
func (t *Table) Alphabet() []string {
	return t.choice.Labels()
}

// Sample draws one letter according to the profile's frequencies
func (t *Table) Sample(rnd random.Random) rune {
	return []rune(t.choice.Sample(rnd))[0]
}
