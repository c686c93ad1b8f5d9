package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/YeyeJames/jiale15/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

// ExportDaySales writes one day's appointments as an .xlsx sheet and sends
// the file back.
func (ctrl *Controller) ExportDaySales(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !Models.ValidDate(input.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	rows, err := ctrl.Store.ListAppointmentsForDay(input.Date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	headers := map[string]string{
		"A1": "Time",
		"B1": "Patient",
		"C1": "Therapist",
		"D1": "Treatment",
		"E1": "Price",
		"F1": "Status",
		"G1": "Paid",
	}
	file := excelize.NewFile()
	sheet := "DaySales"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(rows); i++ {
		appendRowDaySales(sheet, file, i, rows)
	}

	var filename string = fmt.Sprintf("./DaySales_%s.xlsx", input.Date)
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowDaySales(sheet string, file *excelize.File, index int, rows []Models.DayAppointment) (fileWriter *excelize.File) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].Time)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].PatientName)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].TherapistName)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].TreatmentName)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].Price)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].Status)
	file.SetCellValue(sheet, fmt.Sprintf("G%v", rowCount), rows[index].PaidAmount)
	return file
}
