package importing

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const templateSheet = "المركبات"

// TemplateHeaders returns the canonical localized header labels in template
// column order. Every label resolves through the column label table.
func TemplateHeaders() []string {
	return []string{
		"رقم اللوحة",
		"الماركة",
		"الموديل",
		"سنة الصنع",
		"اللون",
		"رقم VIN",
		"رقم الهيكل",
		"رقم المحرك",
		"نوع التسجيل",
		"اسم المالك",
		"الحالة",
		"حالة الفحص",
		"حالة التأمين",
		"حالة التجديد",
		"تاريخ انتهاء الفحص",
		"تاريخ انتهاء التأمين",
		"تاريخ انتهاء التسجيل",
		"رسوم التجديد",
		"السعر اليومي",
		"العداد",
		"عدد المقاعد",
	}
}

// templateExampleRow is the single example row shipped with the template, in
// the same column order as TemplateHeaders.
func templateExampleRow() []interface{} {
	return []interface{}{
		"أ ب ج 1234",
		"تويوتا",
		"كامري",
		2023,
		"أبيض",
		"JTNBE46K473031234",
		"CH-9981234",
		"EN-551234",
		"خصوصي",
		"محمد العتيبي",
		"متاح",
		"ساري",
		"ساري",
		"ساري",
		"2026-12-31",
		"2026-06-30",
		"2027-01-15",
		300,
		150,
		42000,
		5,
	}
}

// WriteTemplate produces the reference import workbook: the canonical
// localized headers plus one example row.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	index, err := f.NewSheet(templateSheet)
	if err != nil {
		return errors.Wrap(err, "failed to create template sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.Wrap(err, "failed to drop default sheet")
	}

	headers := make([]interface{}, 0, len(TemplateHeaders()))
	for _, h := range TemplateHeaders() {
		headers = append(headers, h)
	}
	if err := f.SetSheetRow(templateSheet, "A1", &headers); err != nil {
		return errors.Wrap(err, "failed to write header row")
	}
	example := templateExampleRow()
	if err := f.SetSheetRow(templateSheet, "A2", &example); err != nil {
		return errors.Wrap(err, "failed to write example row")
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "failed to write template")
	}
	return nil
}
