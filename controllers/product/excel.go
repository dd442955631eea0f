package productcontroller

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/torianyap/e-commerce-server-1/helpers"
	"github.com/torianyap/e-commerce-server-1/models"
	"gorm.io/gorm"
)

// ExportProductsToExcel streams the whole catalog as an .xlsx download.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to create Excel sheet")
			return
		}

		headers := []string{"ID", "Name", "ImageURL", "Price", "Stock", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.ImageURL)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to write Excel file")
			return
		}
	}
}

// ImportProductsFromExcel bulk-upserts products from an uploaded .xlsx.
// Expected columns: ID (optional), Name, ImageURL, Price, Stock.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			helpers.JSONError(c, http.StatusBadRequest, "Excel file is required")
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to open Excel file")
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to parse Excel file")
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			helpers.JSONError(c, http.StatusBadRequest, "Excel file is empty or missing header row")
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			imageURL := get(2)
			price, err1 := strconv.Atoi(get(3))
			stock, err2 := strconv.Atoi(get(4))

			if name == "" || err1 != nil || err2 != nil || price < 0 || stock < 0 {
				skippedCount++
				continue
			}
			if _, err := url.ParseRequestURI(imageURL); err != nil {
				skippedCount++
				continue
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if db.First(&existing, id).Error == nil {
						existing.Name = name
						existing.ImageURL = imageURL
						existing.Price = price
						existing.Stock = stock
						if db.Save(&existing).Error == nil {
							updatedCount++
						} else {
							skippedCount++
						}
						continue
					}
				}
			}

			product := models.Product{
				Name:     name,
				ImageURL: imageURL,
				Price:    price,
				Stock:    stock,
			}
			if db.Create(&product).Error == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
