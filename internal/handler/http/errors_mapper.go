package http

import (
	"errors"
	"net/http"

	"recipekeep/internal/blob"
	"recipekeep/internal/service"
	"recipekeep/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidRecipeData: http.StatusBadRequest,
	service.ErrRatingOutOfRange:  http.StatusBadRequest,
	service.ErrMissingRecipeText: http.StatusBadRequest,
	service.ErrNotAnArray:        http.StatusBadRequest,
	service.ErrEmptyUpdate:       http.StatusBadRequest,
	service.ErrEmptyPhoto:        http.StatusBadRequest,

	service.ErrPhotoNotFound:     http.StatusNotFound,
	service.ErrExtractorDisabled: http.StatusBadGateway,
	service.ErrExtractorUpstream: http.StatusBadGateway,

	store.ErrRecipeNotFound:   http.StatusNotFound,
	store.ErrStoreUnavailable: http.StatusServiceUnavailable,

	store.ErrRecipeNotSaved:     http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	blob.ErrObjectNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
