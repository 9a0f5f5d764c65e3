/*
 * bondlog_test.go, part of find-pair.
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

package bondlog

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	hbond "github.com/jyesselm/find-pair-sub004"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func bonds() []*hbond.HydrogenBond {
	g := hbond.NewResidue("A.1", "G", hbond.RNA, 0, []*hbond.Atom{{Name: "N1"}, {Name: "N2"}, {Name: "O6"}})
	c := hbond.NewResidue("B.1", "C", hbond.RNA, 0, []*hbond.Atom{{Name: "N3", Pos: r3.Vec{X: 2.9}}, {Name: "N4"}, {Name: "O2"}})
	w := hbond.NewResidue("W.1", "HOH", hbond.Ligand, 0, []*hbond.Atom{{Name: "O"}})
	return []*hbond.HydrogenBond{
		{Index: 0, Donor: c, Acceptor: g, DonorAtom: c.Atoms[1], AcceptorAtom: g.Atoms[2], Distance: 2.999, Alignment: 1.98,
			HSlot: 0, LPSlot: 1, Context: hbond.BaseBase, Classification: hbond.Standard, Conflict: hbond.IsConflictWinner},
		{Index: 1, Donor: g, Acceptor: c, DonorAtom: g.Atoms[0], AcceptorAtom: c.Atoms[0], Distance: 3.0012, Alignment: 1.99,
			HSlot: 0, LPSlot: 0, Context: hbond.BaseBase, Classification: hbond.Standard},
		{Index: 2, Donor: g, Acceptor: w, DonorAtom: g.Atoms[1], AcceptorAtom: w.Atoms[0], Distance: 2.9, Alignment: 0.5,
			HSlot: -1, LPSlot: -1, Context: hbond.NucleicLigand, Classification: hbond.NonStandard, Conflict: hbond.SharesDonorWithWinner},
	}
}

func TestRoundTrip(Te *testing.T) {
	header := map[string]string{"structure": "1ehz", "detection": "modern"}
	for _, comp := range []Compression{Plain, Zstd, Gzip} {
		var buf bytes.Buffer
		W, err := NewWriter(&buf, header, comp)
		require.NoError(Te, err)
		require.NoError(Te, W.Write(bonds()...))
		require.NoError(Te, W.Close())
		require.NoError(Te, W.Close(), "second close is a no-op")
		assert.Error(Te, W.Write(bonds()...))

		switch comp {
		case Zstd:
			assert.True(Te, bytes.HasPrefix(buf.Bytes(), zstdMagic))
		case Plain:
			assert.True(Te, strings.HasPrefix(buf.String(), "#detection=modern\n#structure=1ehz\n"))
		}

		R, h, err := NewReader(&buf)
		require.NoError(Te, err)
		assert.Equal(Te, header, h)
		recs, err := R.ReadAll()
		require.NoError(Te, err)
		require.NoError(Te, R.Close())
		require.Len(Te, recs, 3)
		assert.Equal(Te, RecordOf(bonds()[0]), recs[0])
		assert.Equal(Te, 3.001, recs[1].Distance, "three decimals are kept")
		assert.Equal(Te, "STANDARD", recs[1].Classification)
		assert.Equal(Te, "W.1", recs[2].AcceptorResidue)
		assert.Equal(Te, -1, recs[2].HSlot)
		assert.Equal(Te, "nucleic-ligand", recs[2].Context)
		assert.Equal(Te, "SHARES_DONOR_WITH_WINNER", recs[2].Conflict)
		assert.Equal(Te, 1, recs[2].Linkage)
		assert.Equal(Te, 18, recs[0].Linkage)
	}
}

func TestFiles(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"hb.txt", "hb.txt.zst", "hb.txt.gz"} {
		path := filepath.Join(dir, name)
		W, err := Create(path, nil)
		require.NoError(Te, err)
		require.NoError(Te, W.Write(bonds()...))
		require.NoError(Te, W.Close())
		R, h, err := Open(path)
		require.NoError(Te, err)
		assert.Nil(Te, h)
		first, err := R.Next()
		require.NoError(Te, err)
		assert.Equal(Te, 0, first.Index)
		rest, err := R.ReadAll()
		require.NoError(Te, err)
		assert.Len(Te, rest, 2)
		_, err = R.Next()
		assert.True(Te, errors.Is(err, io.EOF))
		require.NoError(Te, R.Close())
	}
	assert.Equal(Te, Zstd, CompressionFor("X.ZST"))
	assert.Equal(Te, Plain, CompressionFor("x.tsv"))
}

func TestReaderErrors(Te *testing.T) {
	R, h, err := NewReader(strings.NewReader(""))
	require.NoError(Te, err)
	assert.Nil(Te, h)
	recs, err := R.ReadAll()
	require.NoError(Te, err)
	assert.Empty(Te, recs)

	_, _, err = NewReader(strings.NewReader("#novalue\n"))
	assert.Error(Te, err)

	R, _, err = NewReader(strings.NewReader("#a=b\n1\tA.1\tN1\n"))
	require.NoError(Te, err)
	_, err = R.Next()
	require.Error(Te, err)
	var e *Error
	require.True(Te, errors.As(err, &e))
	assert.True(Te, e.Critical())
	assert.Contains(Te, err.Error(), "line 2")

	//a bad header is refused before any compressor is started.
	for _, comp := range []Compression{Plain, Zstd, Gzip} {
		var buf bytes.Buffer
		W, err := NewWriter(&buf, map[string]string{"ok": "1", "a=b": "c"}, comp)
		assert.Error(Te, err)
		assert.Nil(Te, W)
		assert.Zero(Te, buf.Len())
		_, err = NewWriter(&buf, map[string]string{"note": "two\nlines"}, comp)
		assert.Error(Te, err)
	}
	_, _, err = Open(filepath.Join(Te.TempDir(), "missing"))
	assert.Error(Te, err)
}
