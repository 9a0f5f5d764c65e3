/*
 * json.go, part of find-pair.
 *
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package chemjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	hbond "github.com/jyesselm/find-pair-sub004"
	"gonum.org/v1/gonum/spatial/r3"
)

// Atom is a ready-to-serialize container for an atom.
type Atom struct {
	Name    string     `json:"name"`
	Element string     `json:"element,omitempty"`
	Coords  [3]float64 `json:"coords"`
}

// Residue is a ready-to-serialize container for a residue.
type Residue struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Base  string  `json:"base,omitempty"`
	Atoms []*Atom `json:"atoms"`
}

// Bond is a ready-to-serialize container for a hydrogen bond.
type Bond struct {
	Index           int     `json:"index"`
	DonorResidue    string  `json:"donor_residue"`
	DonorAtom       string  `json:"donor_atom"`
	AcceptorResidue string  `json:"acceptor_residue"`
	AcceptorAtom    string  `json:"acceptor_atom"`
	Distance        float64 `json:"distance"`
	Alignment       float64 `json:"alignment"`
	HSlot           int     `json:"h_slot"`
	LPSlot          int     `json:"lp_slot"`
	Context         string  `json:"context"`
	Classification  string  `json:"classification"`
	Conflict        string  `json:"conflict"`
	Linkage         int     `json:"linkage"`
	Accepted        bool    `json:"accepted"`
}

// An easily JSON-serializable error type.
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InOptions     bool
	InStructure   bool
	InProcess     bool
	InPostProcess bool
	Residue       int //index of the failing residue, -1 if none
	Function      string
	Message       string
}

// Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// NewError takes an error and some additional info to create a json-marshal-able error.
// where is one of "options", "structure", "postprocess"; anything else means
// the error happened while processing.
func NewError(where, function string, err error) *Error {
	jerr := &Error{IsError: true, Function: function, Message: err.Error(), Residue: -1}
	switch where {
	case "options":
		jerr.InOptions = true
	case "structure":
		jerr.InStructure = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	return jerr
}

// Options passed from the calling external program. Empty fields keep
// the defaults.
type Options struct {
	Detection string   `json:"detection,omitempty"`
	Optimizer string   `json:"optimizer,omitempty"`
	Strategy  string   `json:"strategy,omitempty"`
	Contexts  []string `json:"contexts,omitempty"`
	BaseOnly  bool     `json:"base_only,omitempty"`
	Pairs     [][2]int `json:"pairs,omitempty"` //residue index pairs, all close pairs if empty
}

// Info is passed back to the calling program after the bonds.
type Info struct {
	Residues   int            `json:"residues"`
	Accepted   int            `json:"accepted"`
	Rejected   int            `json:"rejected"`
	ByContext  map[string]int `json:"by_context,omitempty"`
	MeanLength float64        `json:"mean_distance"`
}

// Send marshals the info and writes it to out.
func (J *Info) Send(out io.Writer) *Error {
	if err := json.NewEncoder(out).Encode(J); err != nil {
		return NewError("postprocess", "Info.Send", err)
	}
	return nil
}

// DecodeOptions decodes one line of JSON options. Unknown fields are an error.
func DecodeOptions(stdin *bufio.Reader) (*Options, *Error) {
	line, err := stdin.ReadBytes('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, NewError("options", "DecodeOptions", err)
	}
	ret := new(Options)
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.DisallowUnknownFields()
	if err = dec.Decode(ret); err != nil {
		return nil, NewError("options", "DecodeOptions", err)
	}
	return ret, nil
}

// ToResidue builds the hbond residue described by R.
func (R *Residue) ToResidue() (*hbond.Residue, error) {
	mtype, ok := hbond.ParseMoleculeType(R.Type)
	if !ok {
		return nil, fmt.Errorf("residue %s: unknown molecule type %q", R.ID, R.Type)
	}
	if len(R.Base) > 1 {
		return nil, fmt.Errorf("residue %s: base %q is not a one-letter code", R.ID, R.Base)
	}
	var base byte
	if R.Base != "" {
		base = strings.ToUpper(R.Base)[0]
	}
	atoms := make([]*hbond.Atom, 0, len(R.Atoms))
	for _, a := range R.Atoms {
		if a == nil {
			return nil, fmt.Errorf("residue %s: null atom", R.ID)
		}
		atoms = append(atoms, &hbond.Atom{Name: a.Name, Element: a.Element, Pos: r3.Vec{X: a.Coords[0], Y: a.Coords[1], Z: a.Coords[2]}})
	}
	return hbond.NewResidue(R.ID, R.Name, mtype, base, atoms), nil
}

// DecodeResidues decodes residue objects from stream until its end.
func DecodeResidues(stream io.Reader) ([]*hbond.Residue, *Error) {
	const funcname = "DecodeResidues" //for the error
	dec := json.NewDecoder(stream)
	var ret []*hbond.Residue
	for i := 0; ; i++ {
		R := new(Residue)
		err := dec.Decode(R)
		if errors.Is(err, io.EOF) {
			return ret, nil
		}
		if err == nil {
			var res *hbond.Residue
			if res, err = R.ToResidue(); err == nil {
				ret = append(ret, res)
				continue
			}
		}
		jerr := NewError("structure", funcname, err)
		jerr.Residue = i
		return nil, jerr
	}
}

// FromBond returns the container for b.
func FromBond(b *hbond.HydrogenBond, accepted bool) *Bond {
	return &Bond{
		Index:           b.Index,
		DonorResidue:    b.Donor.ID,
		DonorAtom:       hbond.NormalizeAtomName(b.DonorAtom.Name),
		AcceptorResidue: b.Acceptor.ID,
		AcceptorAtom:    hbond.NormalizeAtomName(b.AcceptorAtom.Name),
		Distance:        b.Distance,
		Alignment:       b.Alignment,
		HSlot:           b.HSlot,
		LPSlot:          b.LPSlot,
		Context:         b.Context.String(),
		Classification:  b.Classification.String(),
		Conflict:        b.Conflict.String(),
		Linkage:         b.LinkageType(),
		Accepted:        accepted,
	}
}

// SendResult writes the accepted and then, if rejected is true, the rejected
// bonds of res to out, one per line, followed by the Info line.
func SendResult(res *hbond.Result, residues int, rejected bool, out io.Writer) *Error {
	const funcname = "SendResult"
	enc := json.NewEncoder(out)
	for _, b := range res.Accepted {
		if err := enc.Encode(FromBond(b, true)); err != nil {
			return NewError("postprocess", funcname, err)
		}
	}
	if rejected {
		for _, b := range res.Rejected {
			if err := enc.Encode(FromBond(b, false)); err != nil {
				return NewError("postprocess", funcname, err)
			}
		}
	}
	S := hbond.Summarize(res.Accepted)
	info := &Info{Residues: residues, Accepted: len(res.Accepted), Rejected: len(res.Rejected), MeanLength: S.MeanDistance}
	for c, n := range S.ByContext {
		if info.ByContext == nil {
			info.ByContext = make(map[string]int)
		}
		info.ByContext[c.String()] = n
	}
	if err := info.Send(out); err != nil {
		err.Decorate(funcname)
		return err
	}
	return nil
}
