package firestoreRepo

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rmadmin/models"
	"rmadmin/services/dashboard"
)

func TestDirection(t *testing.T) {
	assert.Equal(t, firestore.Desc, direction(dashboard.Descending))
	assert.Equal(t, firestore.Asc, direction(dashboard.Ascending))
}

func TestToFirestore_ReplacesServerTimestamp(t *testing.T) {
	date := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	out := toFirestore(map[string]any{
		models.FieldName:      "Ana",
		models.FieldDate:      date,
		models.FieldCreatedAt: models.ServerTimestamp,
		"meta":                map[string]any{"visto": models.ServerTimestamp},
	})

	assert.Equal(t, "Ana", out[models.FieldName])
	assert.Equal(t, date, out[models.FieldDate])
	assert.Equal(t, firestore.ServerTimestamp, out[models.FieldCreatedAt])
	assert.Equal(t, firestore.ServerTimestamp, out["meta"].(map[string]any)["visto"])
}

func TestToUpdates_SortedSingleSegmentPaths(t *testing.T) {
	updates := toUpdates(map[string]any{
		models.FieldStatus:    "confirmado",
		models.FieldUpdatedAt: models.ServerTimestamp,
		"datos.extra":         1,
	})

	assert.Equal(t, []firestore.Update{
		{FieldPath: firestore.FieldPath{models.FieldUpdatedAt}, Value: firestore.ServerTimestamp},
		{FieldPath: firestore.FieldPath{"datos.extra"}, Value: 1},
		{FieldPath: firestore.FieldPath{models.FieldStatus}, Value: "confirmado"},
	}, updates)
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))

	err := mapError(status.Error(codes.NotFound, "no document to update"))
	assert.ErrorIs(t, err, models.ErrRecordNotFound)

	other := errors.New("deadline exceeded")
	assert.Equal(t, other, mapError(other))
	assert.NotErrorIs(t, mapError(status.Error(codes.PermissionDenied, "denied")), models.ErrRecordNotFound)
}
