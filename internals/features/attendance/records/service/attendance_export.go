package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"officer_duty_backend/internals/features/attendance/records/model"
	"officer_duty_backend/internals/helpers/dbtime"
)

const (
	exportSheet      = "Attendance"
	exportTimeLayout = "2006-01-02 15:04:05"
)

var exportHeader = []any{"Date", "Username", "Full Name", "Department", "Clock In", "Clock Out", "Status", "Duration (minutes)"}

// BuildExportWorkbook menulis record ke workbook XLSX satu sheet. Jam ditulis
// dalam timezone aplikasi.
func BuildExportWorkbook(rows []model.AttendanceModel) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(exportSheet, "A1", "H1", bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "A", "H", 20); err != nil {
		return nil, err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := exportRow(&rows[i])
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}

func exportRow(m *model.AttendanceModel) []any {
	var username, fullName, department string
	if m.User != nil {
		username = m.User.Username
		department = m.User.DepartmentName()
		if m.User.FullName != nil {
			fullName = *m.User.FullName
		}
	}
	clockOut, duration := "", ""
	if m.ClockOut != nil {
		clockOut = dbtime.Local(*m.ClockOut).Format(exportTimeLayout)
		duration = fmt.Sprintf("%d", int(m.ClockOut.Sub(m.ClockIn).Minutes()))
	}
	return []any{
		m.Date.String(),
		username,
		fullName,
		department,
		dbtime.Local(m.ClockIn).Format(exportTimeLayout),
		clockOut,
		string(m.Status),
		duration,
	}
}

// ExportFilename: attendance_<start>_<end>.xlsx (bagian kosong → "all").
func ExportFilename(start, end *dbtime.Date) string {
	s, e := "all", "all"
	if start != nil {
		s = start.String()
	}
	if end != nil {
		e = end.String()
	}
	return fmt.Sprintf("attendance_%s_%s.xlsx", s, e)
}
