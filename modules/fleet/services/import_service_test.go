package services

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rentora/rentora/pkg/configuration"
)

type stubPlateChecker struct {
	existing map[string]struct{}
}

func (s *stubPlateChecker) ExistingPlates(_ context.Context, plateNumbers []string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	for _, p := range plateNumbers {
		if _, ok := s.existing[p]; ok {
			out[p] = struct{}{}
		}
	}
	return out, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testImportOptions() configuration.ImportOptions {
	return configuration.ImportOptions{
		ExpiryWarningDays: 30,
		MaxRows:           5000,
	}
}

func importWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestImportService_Preview(t *testing.T) {
	svc := NewImportService(nil, nil, &stubPlateChecker{}, testImportOptions(), testLogger())

	buf := importWorkbook(t, [][]interface{}{
		{"رقم اللوحة", "الماركة", "الموديل"},
		{"ABC-1234", "Toyota", "Camry"},
		{"", "Kia", "Rio"},
	})

	sess, err := svc.Preview(context.Background(), buf)
	require.NoError(t, err)

	assert.Equal(t, 2, sess.Len())
	assert.True(t, sess.Blocked(), "the row without a plate blocks the batch")
	assert.False(t, sess.Issues().RowBlocked(0))
	assert.True(t, sess.Issues().RowBlocked(1))
}

func TestImportService_PreviewRowLimit(t *testing.T) {
	opts := testImportOptions()
	opts.MaxRows = 1
	svc := NewImportService(nil, nil, &stubPlateChecker{}, opts, testLogger())

	buf := importWorkbook(t, [][]interface{}{
		{"رقم اللوحة", "الماركة", "الموديل"},
		{"AAA-111", "Toyota", "Camry"},
		{"BBB-222", "Kia", "Rio"},
	})

	_, err := svc.Preview(context.Background(), buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit is 1")
}

func TestImportService_PreviewCorruptFile(t *testing.T) {
	svc := NewImportService(nil, nil, &stubPlateChecker{}, testImportOptions(), testLogger())

	_, err := svc.Preview(context.Background(), bytes.NewReader([]byte("garbage")))
	require.Error(t, err)
}

func TestImportService_UpdateRowClearsBlock(t *testing.T) {
	svc := NewImportService(nil, nil, &stubPlateChecker{}, testImportOptions(), testLogger())

	buf := importWorkbook(t, [][]interface{}{
		{"رقم اللوحة", "الماركة", "الموديل"},
		{"", "Toyota", "Camry"},
	})
	sess, err := svc.Preview(context.Background(), buf)
	require.NoError(t, err)
	require.True(t, sess.Blocked())

	rec, err := sess.Record(0)
	require.NoError(t, err)
	rec.PlateNumber = "ABC-1234"

	require.NoError(t, svc.UpdateRow(context.Background(), sess, 0, rec))
	assert.False(t, sess.Blocked())
}

func TestImportService_TemplateParsesBack(t *testing.T) {
	svc := NewImportService(nil, nil, &stubPlateChecker{}, testImportOptions(), testLogger())

	var buf bytes.Buffer
	require.NoError(t, svc.Template(&buf))

	sess, err := svc.Preview(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Len())
	assert.False(t, sess.Blocked())
}
