package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordermanager/internal/app/apperr"
	"ordermanager/internal/app/ds"
	"ordermanager/internal/app/repository/repotest"
)

func TestCreateParameterUniqueTitle(t *testing.T) {
	repo, _ := repotest.New(t)
	ctx := context.Background()

	parameter, err := repo.CreateParameter(ctx, "  Length ")
	require.NoError(t, err)
	assert.Equal(t, "Length", parameter.Title)

	_, err = repo.CreateParameter(ctx, "Length")
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCreateParameterValidatesTitle(t *testing.T) {
	repo, _ := repotest.New(t)
	ctx := context.Background()

	_, err := repo.CreateParameter(ctx, "   ")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = repo.CreateParameter(ctx, strings.Repeat("я", ds.TitleMaxLength+1))
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRenameParameter(t *testing.T) {
	repo, _ := repotest.New(t)
	ctx := context.Background()
	service := repotest.Haircut(t, repo)

	renamed, err := repo.RenameParameter(ctx, service.Parameters[0].ParameterID, "Day")
	require.NoError(t, err)
	assert.Equal(t, "Day", renamed.Title)

	_, err = repo.RenameParameter(ctx, 404, "Ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	parameters, err := repo.ListParameters(ctx)
	require.NoError(t, err)
	require.Len(t, parameters, 2)
	assert.Equal(t, "Day", parameters[0].Title)
	assert.Equal(t, "Length", parameters[1].Title)
}

func TestEnsureIsIdempotent(t *testing.T) {
	repo, db := repotest.New(t)
	ctx := context.Background()

	first, err := repo.EnsureParameter(ctx, "Length")
	require.NoError(t, err)
	second, err := repo.EnsureParameter(ctx, "Length")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	service, err := repo.EnsureService(ctx, "Haircut")
	require.NoError(t, err)
	again, err := repo.EnsureService(ctx, "Haircut")
	require.NoError(t, err)
	assert.Equal(t, service.ID, again.ID)

	require.NoError(t, repo.EnsureAssignment(ctx, service.ID, first.ID, ds.TypeText))
	require.NoError(t, repo.EnsureAssignment(ctx, service.ID, first.ID, ds.TypeNumber))
	assert.EqualValues(t, 1, repotest.Count(t, db, &ds.ParameterInService{}))

	loaded, err := repo.GetService(ctx, service.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Parameters, 1)
	assert.Equal(t, ds.TypeNumber, loaded.Parameters[0].Type)
}

func TestAssignParameter(t *testing.T) {
	repo, _ := repotest.New(t)
	ctx := context.Background()

	service, err := repo.CreateService(ctx, "Haircut")
	require.NoError(t, err)
	parameter, err := repo.CreateParameter(ctx, "Length")
	require.NoError(t, err)

	assigned, err := repo.AssignParameter(ctx, service.ID, parameter.ID, ds.TypeText)
	require.NoError(t, err)
	assert.Equal(t, "Length", assigned.Parameter.Title)

	_, err = repo.AssignParameter(ctx, service.ID, parameter.ID, ds.TypeNumber)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = repo.AssignParameter(ctx, service.ID, parameter.ID, ds.ParameterType("color"))
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = repo.AssignParameter(ctx, 404, parameter.ID, ds.TypeText)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = repo.AssignParameter(ctx, service.ID, 404, ds.TypeText)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUnassignParameter(t *testing.T) {
	repo, _ := repotest.New(t)
	ctx := context.Background()
	service := repotest.Haircut(t, repo)

	require.NoError(t, repo.UnassignParameter(ctx, service.ID, service.Parameters[0].ParameterID))
	assert.ErrorIs(t, repo.UnassignParameter(ctx, service.ID, service.Parameters[0].ParameterID), apperr.ErrNotFound)

	loaded, err := repo.GetService(ctx, service.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Parameters, 1)
}

func TestListServicesOrdering(t *testing.T) {
	repo, _ := repotest.New(t)
	ctx := context.Background()

	repotest.Service(t, repo, "Manicure",
		repotest.Field{Title: "Shape", Type: ds.TypeText},
		repotest.Field{Title: "Color", Type: ds.TypeText},
		repotest.Field{Title: "When", Type: ds.TypeDate},
	)
	repotest.Haircut(t, repo)

	services, err := repo.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Haircut", services[0].Title)
	assert.Equal(t, "Manicure", services[1].Title)

	var titles []string
	for _, assigned := range services[1].Parameters {
		titles = append(titles, assigned.Parameter.Title)
	}
	// сначала по типу (date < text), затем по наименованию
	assert.Equal(t, []string{"When", "Color", "Shape"}, titles)
}

func TestGetServiceNotFound(t *testing.T) {
	repo, _ := repotest.New(t)

	_, err := repo.GetService(context.Background(), 404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteService(context.Background(), 404), apperr.ErrNotFound)
}

func TestSetServiceImage(t *testing.T) {
	repo, _ := repotest.New(t)
	ctx := context.Background()
	service := repotest.Haircut(t, repo)

	key := "service_abc.png"
	require.NoError(t, repo.SetServiceImage(ctx, service.ID, &key))

	loaded, err := repo.GetService(ctx, service.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.ImageKey)
	assert.Equal(t, key, *loaded.ImageKey)

	require.NoError(t, repo.SetServiceImage(ctx, service.ID, nil))
	loaded, err = repo.GetService(ctx, service.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded.ImageKey)

	assert.ErrorIs(t, repo.SetServiceImage(ctx, 404, &key), apperr.ErrNotFound)
}
