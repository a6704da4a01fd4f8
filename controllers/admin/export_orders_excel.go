package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	"github.com/junaidrashid-git/storefront-api/storage"
	"github.com/tealeg/xlsx"
)

// GET /admin/orders/export-excel
func ExportOrdersToExcel(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := orderControllers.OrderLog(kv)

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"OrderID", "Date", "Customer", "Email", "Mode", "Status",
			"Items", "Subtotal", "Shipping", "Tax", "Total",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows; money columns use display rounding.
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.Date.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.Customer.Name)
			row.AddCell().SetValue(o.Customer.Email)
			row.AddCell().SetValue(string(o.Mode))
			row.AddCell().SetValue(string(o.Status))

			itemCount := 0
			for _, item := range o.Items {
				itemCount += item.Quantity
			}
			row.AddCell().SetValue(itemCount)

			row.AddCell().SetValue(orderControllers.Round2(o.Subtotal))
			row.AddCell().SetValue(orderControllers.Round2(o.Shipping))
			row.AddCell().SetValue(orderControllers.Round2(o.Tax))
			row.AddCell().SetValue(orderControllers.Round2(o.Total))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
