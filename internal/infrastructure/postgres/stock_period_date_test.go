package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-movement-report/internal/domain"
)

// codecRow decodifica columnas ya codificadas en binario con el pgtype.Map de pgx,
// igual que lo haría una fila real.
type codecRow struct {
	m    *pgtype.Map
	oids []uint32
	cols [][]byte
}

func (r codecRow) Scan(dest ...any) error {
	for i := range dest {
		if err := r.m.Scan(r.oids[i], pgtype.BinaryFormatCode, r.cols[i], dest[i]); err != nil {
			return err
		}
	}
	return nil
}

func encodeCol(t *testing.T, m *pgtype.Map, oid uint32, v any) []byte {
	t.Helper()
	buf, err := m.Encode(oid, pgtype.BinaryFormatCode, v, nil)
	require.NoError(t, err)
	return buf
}

// withLocalZone cambia time.Local mientras dura el test.
func withLocalZone(t *testing.T, loc *time.Location) {
	t.Helper()
	prev := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = prev })
}

func TestScanStockPeriod_FechaNoDependeDeLaZonaHoraria(t *testing.T) {
	withLocalZone(t, time.FixedZone("COT", -5*3600))

	m := pgtype.NewMap()
	date := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 2, 1, 3, 0, 0, 0, time.UTC)
	row := codecRow{
		m:    m,
		oids: []uint32{pgtype.TextOID, pgtype.TextOID, pgtype.TextOID, pgtype.DateOID, pgtype.TimestamptzOID},
		cols: [][]byte{
			encodeCol(t, m, pgtype.TextOID, "SP"),
			encodeCol(t, m, pgtype.TextOID, "C"),
			encodeCol(t, m, pgtype.TextOID, "L1"),
			encodeCol(t, m, pgtype.DateOID, date),
			encodeCol(t, m, pgtype.TimestamptzOID, created),
		},
	}

	p, err := scanStockPeriod(row)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31", p.Date.Format("2006-01-02"))
	assert.Equal(t, time.UTC, p.Date.Location())
	assert.Equal(t, "L1", p.LocationID)
	assert.True(t, created.Equal(p.CreatedAt))
}

func TestSchema_FechaDePeriodoEsDate(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS stock_periods \(.*?\bdate\s+DATE NOT NULL`), schemaSQL)
}

func TestProductRepo_UpdateCost(t *testing.T) {
	q := &captureQuerier{}
	err := NewProductRepository(q).UpdateCost(context.Background(), "P", decimal.NewFromInt(8))
	require.NoError(t, err)
	assert.Contains(t, q.sql, "UPDATE products SET cost = $2")
	assert.Equal(t, []any{"P", decimal.NewFromInt(8)}, q.args)
}

func TestProductRepo_UpdateCost_Inexistente(t *testing.T) {
	q := &captureQuerier{tag: "UPDATE 0"}
	err := NewProductRepository(q).UpdateCost(context.Background(), "nope", decimal.NewFromInt(8))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
