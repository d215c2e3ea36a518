package main

import (
	"errors"
	"flag"
	"strconv"
	"strings"

	"github.com/lsds/tileplan/srcs/go/log"
	"github.com/lsds/tileplan/srcs/go/tiling"
	"github.com/lsds/tileplan/srcs/go/utils"
	"github.com/lsds/tileplan/srcs/go/utils/xterm"
)

var (
	rows  = flag.Int("rows", 8, "number of matrix rows")
	cols  = flag.Int("cols", 8, "number of matrix columns")
	np    = flag.Int("np", 4, "number of workers the columns are split across")
	at    = flag.String("at", "", "global coordinate <row>,<col> to locate in its worker's tile")
	quiet = flag.Bool("q", false, "don't log debug info")
)

func init() {
	log.SetFlags(0)
	flag.Parse()
	if !*quiet {
		utils.LogArgs()
		utils.LogTileplanEnv()
	}
}

var errInvalidCoord = errors.New("invalid coordinate, expected <row>,<col>")

func parseCoord(val string) (int, int, error) {
	parts := strings.Split(val, ",")
	if len(parts) != 2 {
		return 0, 0, errInvalidCoord
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errInvalidCoord
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errInvalidCoord
	}
	return row, col, nil
}

func main() {
	m, err := tiling.NewInterval2DFromBounds(0, *rows-1, 0, *cols-1)
	if err != nil {
		utils.ExitErr(err)
	}
	log.Infof("matrix %s, %d elements, %s", m, m.Size(), utils.Pluralize(*np, "worker", "workers"))
	for rank := 0; rank < *np; rank++ {
		tile := m.Submatrix(*np, rank)
		c := xterm.BasicColors.Choose(rank)
		log.Infof("rank %d owns %s, %d elements", rank, c.S(tile.String()), tile.Size())
	}
	log.Infof("column tiles have %d or %d columns",
		m.Cols().SmallestSubintervalLen(*np), m.Cols().LargestSubintervalLen(*np))
	if len(*at) > 0 {
		row, col, err := parseCoord(*at)
		if err != nil {
			utils.ExitErr(err)
		}
		locate(m, row, col)
	}
}

func locate(m tiling.Interval2D, row, col int) {
	if !m.Contains(row, col) {
		log.Exitf("(%d, %d) is outside %s", row, col, m)
	}
	for rank := 0; rank < *np; rank++ {
		tile := m.Submatrix(*np, rank)
		if !tile.Contains(row, col) {
			continue
		}
		local := tile.LocalIndex(row, col)
		r, c := tile.GlobalIndex(local)
		log.Infof("(%d, %d) lives on rank %d at local index %d, which maps back to (%d, %d)",
			row, col, rank, local, r, c)
		return
	}
}
