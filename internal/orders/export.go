package orders

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Aravindhan20041506/Lacto-hub/internal/format"
	"github.com/Aravindhan20041506/Lacto-hub/internal/models"
)

var csvHeader = []string{
	"Order ID", "Customer Name", "Phone", "Address", "Items",
	"Total", "Payment Method", "Delivery Time", "Status", "Date",
}

// ExportCSV writes one row per order. The csv writer quotes multi-value
// columns; line items render as "name (quantity)" joined by "; ".
func ExportCSV(w io.Writer, all []models.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export orders: %w", err)
	}
	for _, o := range all {
		row := []string{
			o.OrderID,
			o.CustomerInfo.Name,
			o.CustomerInfo.Phone,
			o.DeliveryInfo.Address,
			formatItems(o.Items),
			strconv.FormatFloat(o.Total, 'f', -1, 64),
			o.PaymentMethod,
			o.DeliveryInfo.DeliveryTime,
			o.Status,
			format.Date(o.OrderDate),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export orders: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export orders: %w", err)
	}
	return nil
}

func formatItems(items []models.CartItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s (%d)", it.Name, it.Quantity)
	}
	return strings.Join(parts, "; ")
}
