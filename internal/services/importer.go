package services

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jeongjingoo/tech/dto"
	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/repository"
)

type Importer struct {
	repo repository.SchoolRepository
	log  logrus.FieldLogger
}

func NewImporter(repo repository.SchoolRepository, log logrus.FieldLogger) *Importer {
	return &Importer{repo: repo, log: log}
}

// ImportFile parses a spreadsheet and upserts its rows.
func (im *Importer) ImportFile(ctx context.Context, name string, r io.ReadSeeker) (dto.ImportResult, error) {
	if !SupportedSheet(name) {
		return dto.ImportResult{}, ErrUnsupportedFile
	}
	rows, err := ParseSheet(name, r)
	if err != nil {
		return dto.ImportResult{}, err
	}
	if len(rows) == 0 {
		return dto.ImportResult{}, ErrEmptySheet
	}
	return im.Upsert(ctx, rows), nil
}

// Upsert matches each row on division+level+name. Matching schools get their
// data replaced, the rest are inserted. Row failures are logged and counted.
func (im *Importer) Upsert(ctx context.Context, rows []Row) dto.ImportResult {
	res := dto.ImportResult{BatchID: uuid.NewString()}
	log := im.log.WithField("batch", res.BatchID)

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			res.Skipped = len(rows) - i
			log.WithError(err).WithField("skipped", res.Skipped).Warn("import stopped early")
			break
		}
		added, err := im.upsertRow(ctx, row)
		switch {
		case err != nil:
			res.Errors++
			log.WithError(err).WithField("row", i+2).Warn("import row failed")
		case added:
			res.Added++
		default:
			res.Updated++
		}
	}
	log.WithFields(logrus.Fields{
		"added":   res.Added,
		"updated": res.Updated,
		"errors":  res.Errors,
		"skipped": res.Skipped,
	}).Info("school import finished")
	return res
}

func (im *Importer) upsertRow(ctx context.Context, row Row) (bool, error) {
	data := SchoolDataFromRow(row)
	if data.Name == "" {
		return false, errors.New("name is empty")
	}

	existing, err := im.repo.FindByNaturalKey(ctx, data.Division, data.Level, data.Name)
	switch {
	case err == nil:
		return false, im.repo.ReplaceData(ctx, existing.ID, data)
	case errors.Is(err, repository.ErrNotFound):
		return true, im.repo.Insert(ctx, &models.School{Data: data})
	default:
		return false, err
	}
}

// InsertRows stores each row as a new school without matching.
func (im *Importer) InsertRows(ctx context.Context, rows []Row) ([]models.School, error) {
	out := make([]models.School, 0, len(rows))
	for _, row := range rows {
		school := models.School{Data: SchoolDataFromRow(row)}
		if err := im.repo.Insert(ctx, &school); err != nil {
			return out, err
		}
		out = append(out, school)
	}
	return out, nil
}

// SchoolDataFromRow converts loosely typed cells; bad numbers become 0.
func SchoolDataFromRow(row Row) models.SchoolData {
	return models.SchoolData{
		Division:        row["division"],
		Level:           row["level"],
		Name:            row["name"],
		IsTech:          dto.ParseInt(row["istech"]),
		Address:         row["address"],
		TotalClasses:    dto.ParseInt(row["total_classes"]),
		TeachersRoomNum: row["teachers_room_num"],
		AdminRoomNum:    row["admin_room_num"],
		Team:            row["team"],
		Lat:             dto.ParseNumber(row["lat"]),
		Lon:             dto.ParseNumber(row["lon"]),
	}.WithDefaults()
}

// RowsFromJSON turns client-parsed sheet objects into rows.
func RowsFromJSON(objects []map[string]any) []Row {
	rows := make([]Row, 0, len(objects))
	for _, obj := range objects {
		row := Row{}
		for k, v := range obj {
			key := normalizeHeader(k)
			switch val := v.(type) {
			case nil:
			case string:
				row[key] = val
			case float64:
				row[key] = strconv.FormatFloat(val, 'f', -1, 64)
			default:
				row[key] = fmt.Sprint(val)
			}
		}
		rows = append(rows, row)
	}
	return rows
}
