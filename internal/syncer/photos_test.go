package syncer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"recipekeep/internal/logger"
	"recipekeep/internal/mock"
	"recipekeep/internal/utils"
	"recipekeep/models"
)

// ─────────────────────────────────────────────
// UploadPhoto
// ─────────────────────────────────────────────

func TestUploadPhoto_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, gw, pending := newTestController(t, ctrl)

	data := []byte{0xff, 0xd8, 0xff}
	serverPath := "recipe-photos/1/222-bb.jpg"

	gomock.InOrder(
		pending.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, row models.PendingUpload) error {
				assert.True(t, utils.IsTempID(row.TempID))
				assert.Equal(t, int64(1), row.RecipeID)
				assert.Equal(t, "dish.jpg", row.Filename)
				assert.Equal(t, models.UploadStatusUploading, row.Status)
				return nil
			}),
		gw.EXPECT().UploadPhoto(gomock.Any(), int64(1), "dish.jpg", data).
			Return(models.PhotoUploadResult{Message: "Photo uploaded successfully", PhotoPath: serverPath}, nil),
		pending.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, row models.PendingUpload) error {
				assert.Equal(t, models.UploadStatusCompleted, row.Status)
				assert.Equal(t, serverPath, row.PhotoPath)
				return nil
			}),
	)

	got, err := c.UploadPhoto(context.Background(), "dish.jpg", data)
	require.NoError(t, err)
	assert.Equal(t, serverPath, got)

	photos := c.Recipe().Photos
	assert.Contains(t, photos, serverPath)
	for _, photo := range photos {
		assert.False(t, utils.IsTempID(photo))
	}

	// preview released once the server path is in place
	_, ok := c.PhotoPreview(got)
	assert.False(t, ok)
}

func TestUploadPhoto_FailureKeepsTempEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, gw, pending := newTestController(t, ctrl)

	data := []byte{1, 2, 3}

	gomock.InOrder(
		pending.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		gw.EXPECT().UploadPhoto(gomock.Any(), int64(1), "dish.jpg", data).
			Return(models.PhotoUploadResult{}, errNetwork),
		pending.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, row models.PendingUpload) error {
				assert.Equal(t, models.UploadStatusError, row.Status)
				assert.Contains(t, row.Error, "network down")
				return nil
			}),
	)

	tempID, err := c.UploadPhoto(context.Background(), "dish.jpg", data)
	require.ErrorIs(t, err, errNetwork)
	require.True(t, utils.IsTempID(tempID))

	// temp entry and preview survive so the UI keeps showing the photo
	assert.Contains(t, c.Recipe().Photos, tempID)
	preview, ok := c.PhotoPreview(tempID)
	require.True(t, ok)
	assert.Equal(t, data, preview)
}

func TestUploadPhoto_PendingSaveFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, gw, pending := newTestController(t, ctrl)

	pending.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errNetwork).Times(2)
	gw.EXPECT().UploadPhoto(gomock.Any(), int64(1), "dish.jpg", gomock.Any()).
		Return(models.PhotoUploadResult{PhotoPath: "recipe-photos/1/333-cc.jpg"}, nil)

	got, err := c.UploadPhoto(context.Background(), "dish.jpg", []byte{1})
	require.NoError(t, err)
	assert.Equal(t, "recipe-photos/1/333-cc.jpg", got)
}

// ─────────────────────────────────────────────
// DeletePhoto
// ─────────────────────────────────────────────

func TestDeletePhoto_SendsLeafFilename(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, gw, _ := newTestController(t, ctrl)

	gw.EXPECT().DeletePhoto(gomock.Any(), int64(1), "111-aa.jpg").Return(nil)

	require.NoError(t, c.DeletePhoto(context.Background(), "recipe-photos/1/111-aa.jpg"))
	assert.Empty(t, c.Recipe().Photos)
}

func TestDeletePhoto_UnknownPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, _ := newTestController(t, ctrl)

	err := c.DeletePhoto(context.Background(), "recipe-photos/1/nope.jpg")
	assert.ErrorIs(t, err, ErrNoSuchPhoto)
}

func TestDeletePhoto_TempIDIsLocalOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, gw, pending := newTestController(t, ctrl)

	pending.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	gw.EXPECT().UploadPhoto(gomock.Any(), int64(1), "dish.jpg", gomock.Any()).
		Return(models.PhotoUploadResult{}, errNetwork)

	tempID, err := c.UploadPhoto(context.Background(), "dish.jpg", []byte{1})
	require.Error(t, err)

	// no gateway.DeletePhoto expectation: removing a temp entry never
	// touches the network
	pending.EXPECT().Delete(gomock.Any(), tempID).Return(nil)

	require.NoError(t, c.DeletePhoto(context.Background(), tempID))
	assert.NotContains(t, c.Recipe().Photos, tempID)
	_, ok := c.PhotoPreview(tempID)
	assert.False(t, ok)
}

func TestDeletePhoto_FailureReconciles(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, gw, _ := newTestController(t, ctrl)

	gw.EXPECT().DeletePhoto(gomock.Any(), int64(1), "111-aa.jpg").Return(errNetwork)
	gw.EXPECT().GetRecipe(gomock.Any(), int64(1)).Return(serverRecipe(), nil)

	err := c.DeletePhoto(context.Background(), "recipe-photos/1/111-aa.jpg")
	require.ErrorIs(t, err, errNetwork)

	// optimistic removal rolled back from server truth
	assert.Contains(t, c.Recipe().Photos, "recipe-photos/1/111-aa.jpg")
}

// ─────────────────────────────────────────────
// ResolvePendingUploads
// ─────────────────────────────────────────────

func TestResolvePendingUploads_FoldsCompletedRows(t *testing.T) {
	ctrl := gomock.NewController(t)

	gw := mock.NewMockServerGateway(ctrl)
	pending := mock.NewMockPendingUploadRepository(ctrl)

	rows := []models.PendingUpload{
		{TempID: "temp-1", RecipeID: 1, Status: models.UploadStatusCompleted, PhotoPath: "recipe-photos/1/444-dd.jpg"},
		{TempID: "temp-2", RecipeID: 1, Status: models.UploadStatusCompleted, PhotoPath: "recipe-photos/1/111-aa.jpg"}, // already present
		{TempID: "temp-3", RecipeID: 1, Status: models.UploadStatusUploading},
		{TempID: "temp-4", RecipeID: 1, Status: models.UploadStatusError, Error: "network down"},
	}

	gw.EXPECT().GetRecipe(gomock.Any(), int64(1)).Return(serverRecipe(), nil)
	pending.EXPECT().GetByRecipe(gomock.Any(), int64(1)).Return(rows, nil)
	for _, row := range rows {
		pending.EXPECT().Delete(gomock.Any(), row.TempID).Return(nil)
	}

	c, err := NewController(context.Background(), 1, gw, pending, logger.Nop())
	require.NoError(t, err)

	photos := c.Recipe().Photos
	assert.Contains(t, photos, "recipe-photos/1/444-dd.jpg")
	assert.Len(t, photos, 2) // no duplicate for the already-present path

	// uploading/error rows never become entries
	for _, photo := range photos {
		assert.False(t, strings.HasPrefix(photo, utils.TempIDPrefix))
	}
}

func TestResolvePendingUploads_ScanFailureSurvivesConstruction(t *testing.T) {
	ctrl := gomock.NewController(t)

	gw := mock.NewMockServerGateway(ctrl)
	pending := mock.NewMockPendingUploadRepository(ctrl)

	gw.EXPECT().GetRecipe(gomock.Any(), int64(1)).Return(serverRecipe(), nil)
	pending.EXPECT().GetByRecipe(gomock.Any(), int64(1)).Return(nil, errNetwork)

	c, err := NewController(context.Background(), 1, gw, pending, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "Plov", c.Recipe().Name)
}
