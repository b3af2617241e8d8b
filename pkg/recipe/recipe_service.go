package recipe

import (
	"context"
	"errors"
	"strings"

	"pantryplanner/domain"
	"pantryplanner/entities"
	"pantryplanner/internal/utils/storage"
	"pantryplanner/pkg/state"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, householdID uuid.UUID) (*state.HouseholdState, error)
		SearchRecipes(ctx context.Context, req domain.RecipeSearchRequest, householdID uuid.UUID) ([]entities.Recipe, error)
		GetRecipeDetail(ctx context.Context, id uuid.UUID, householdID uuid.UUID) (*entities.Recipe, bool, error)
		AddRecipe(ctx context.Context, req domain.AddRecipeRequest, householdID uuid.UUID) (uuid.UUID, *state.HouseholdState, error)
		UpdateRecipe(ctx context.Context, id uuid.UUID, req domain.UpdateRecipeRequest, householdID uuid.UUID) (*state.HouseholdState, error)
		DeleteRecipe(ctx context.Context, id uuid.UUID, householdID uuid.UUID) (*state.HouseholdState, error)
		UploadRecipePhoto(ctx context.Context, req domain.UploadRecipePhotoRequest, householdID uuid.UUID) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		stateManager     *state.Manager
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, stateManager *state.Manager, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		stateManager:     stateManager,
		s3:               s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, householdID uuid.UUID) (*state.HouseholdState, error) {
	return s.stateManager.GetState(ctx, householdID)
}

func (s *recipeService) SearchRecipes(ctx context.Context, req domain.RecipeSearchRequest, householdID uuid.UUID) ([]entities.Recipe, error) {
	snapshot, err := s.stateManager.GetState(ctx, householdID)
	if err != nil {
		return nil, err
	}

	results := make([]entities.Recipe, 0, len(snapshot.Recipes))
	for _, recipe := range snapshot.Recipes {
		if req.Query != "" && !strings.Contains(strings.ToLower(recipe.Name), strings.ToLower(req.Query)) {
			continue
		}
		if len(req.Tags) > 0 && !hasAnyTag(recipe.Tags, req.Tags) {
			continue
		}
		if req.ReadyOnly && !snapshot.IsReady(recipe.ID) {
			continue
		}
		if len(req.HasIngredients) > 0 && !hasAnyIngredient(recipe.Ingredients, req.HasIngredients) {
			continue
		}
		results = append(results, recipe)
	}

	return results, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id uuid.UUID, householdID uuid.UUID) (*entities.Recipe, bool, error) {
	snapshot, err := s.stateManager.GetState(ctx, householdID)
	if err != nil {
		return nil, false, err
	}

	recipe := snapshot.FindRecipe(id)
	if recipe == nil {
		return nil, false, domain.ErrRecipeNotFound
	}

	return recipe, snapshot.IsReady(id), nil
}

func (s *recipeService) AddRecipe(ctx context.Context, req domain.AddRecipeRequest, householdID uuid.UUID) (uuid.UUID, *state.HouseholdState, error) {
	if len(req.Ingredients) == 0 {
		return uuid.Nil, nil, domain.ErrNoIngredients
	}

	recipe := &entities.Recipe{
		ID:           uuid.New(),
		HouseholdID:  householdID,
		Name:         req.Name,
		Tags:         req.Tags,
		Instructions: req.Instructions,
		Ingredients:  buildIngredients(req.Ingredients),
	}

	err := s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		return s.recipeRepository.AddRecipe(ctx, recipe)
	})
	if err != nil {
		return uuid.Nil, nil, err
	}

	fresh, err := s.stateManager.GetState(ctx, householdID)
	return recipe.ID, fresh, err
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req domain.UpdateRecipeRequest, householdID uuid.UUID) (*state.HouseholdState, error) {
	recipe, err := s.ownedRecipe(ctx, id, householdID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.Tags != nil {
		recipe.Tags = req.Tags
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}

	err = s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
			return err
		}
		if req.Ingredients != nil {
			return s.recipeRepository.ReplaceIngredients(ctx, recipe.ID, buildIngredients(req.Ingredients))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.stateManager.GetState(ctx, householdID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uuid.UUID, householdID uuid.UUID) (*state.HouseholdState, error) {
	if _, err := s.ownedRecipe(ctx, id, householdID); err != nil {
		return nil, err
	}

	err := s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		return s.recipeRepository.DeleteRecipe(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	return s.stateManager.GetState(ctx, householdID)
}

func (s *recipeService) UploadRecipePhoto(ctx context.Context, req domain.UploadRecipePhotoRequest, householdID uuid.UUID) (string, error) {
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return "", domain.ErrParseUUID
	}

	recipe, err := s.ownedRecipe(ctx, recipeID, householdID)
	if err != nil {
		return "", err
	}

	fileName := recipe.ID.String()

	var objectKey string
	if recipe.PhotoURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(recipe.PhotoURL)
		objectKey, err = s.s3.UpdateFile(existingKey, req.Photo, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Photo, "recipes", storage.AllowImage...)
	}
	if err != nil {
		return "", domain.ErrInvalidImageFormat
	}

	recipe.PhotoURL = s.s3.GetPublicLinkKey(objectKey)

	err = s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		return s.recipeRepository.UpdateRecipe(ctx, recipe)
	})
	if err != nil {
		return "", err
	}

	return recipe.PhotoURL, nil
}

func (s *recipeService) ownedRecipe(ctx context.Context, id uuid.UUID, householdID uuid.UUID) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if recipe.HouseholdID != householdID {
		return nil, domain.ErrRecipeNotFound
	}

	return recipe, nil
}

func buildIngredients(reqs []domain.RecipeIngredientRequest) []entities.RecipeIngredient {
	ingredients := make([]entities.RecipeIngredient, 0, len(reqs))
	for _, ing := range reqs {
		ingredients = append(ingredients, entities.RecipeIngredient{
			ID:       uuid.New(),
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	return ingredients
}

func hasAnyTag(tags []string, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range tags {
			if t == w {
				return true
			}
		}
	}
	return false
}

func hasAnyIngredient(ingredients []entities.RecipeIngredient, wanted []string) bool {
	for _, w := range wanted {
		for _, ing := range ingredients {
			if strings.EqualFold(ing.Name, w) {
				return true
			}
		}
	}
	return false
}
