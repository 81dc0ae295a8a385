package report

import (
	"time"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// LedgerPDFGenerator arma el PDF del ledger de movimientos.
type LedgerPDFGenerator interface {
	Generate(entries []*entity.LedgerEntry, printedAt time.Time) ([]byte, error)
}

// LedgerXMLExporter serializa el ledger a XML para integraciones externas.
type LedgerXMLExporter interface {
	Export(entries []*entity.LedgerEntry, printedAt time.Time) ([]byte, error)
}
