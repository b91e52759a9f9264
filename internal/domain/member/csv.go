package member

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/docterbee/membership-system/internal/models"
)

// csvHeaders is the fixed export column order. Spreadsheet imports depend on
// it, so new columns go at the end.
var csvHeaders = []string{
	"ID",
	"Full Name",
	"WhatsApp",
	"Email",
	"Address",
	"Age",
	"Card Type",
	"Unique Code",
	"Validity Period",
	"Purchase Count",
	"Registered At",
	"Updated At",
}

// WriteCSV streams all members as UTF-8 CSV. The leading BOM keeps Excel
// from mangling non-ASCII names.
func WriteCSV(w io.Writer, members []models.Member) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}

	for _, m := range members {
		age := ""
		if m.Age != nil {
			age = strconv.Itoa(*m.Age)
		}

		row := []string{
			strconv.FormatUint(uint64(m.ID), 10),
			m.Name,
			m.WhatsApp,
			m.Email,
			m.Address,
			age,
			m.CardType,
			m.UniqueCode,
			m.ValidityLabel,
			strconv.Itoa(m.PurchaseCount),
			m.CreatedAt.Format(time.DateTime),
			m.UpdatedAt.Format(time.DateTime),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
