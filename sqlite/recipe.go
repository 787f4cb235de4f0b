package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/recipeclip"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ recipeclip.RecipeService = (*RecipeService)(nil)

// RecipeService implements recipeclip.RecipeService using SQLite.
type RecipeService struct {
	db *DB
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(db *DB) *RecipeService {
	return &RecipeService{db: db}
}

// hashRecipe computes a content hash over the fields that identify the
// same extracted recipe, returned as a hex string. Clipping the same page
// twice produces the same hash.
func hashRecipe(r *recipeclip.Recipe) string {
	var sb strings.Builder
	sb.WriteString(r.Title)
	for _, ing := range r.Ingredients {
		sb.WriteString("\x00" + ing)
	}
	for _, step := range r.Instructions {
		sb.WriteString("\x01" + step)
	}

	h := xxhash.Sum64String(sb.String())
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateRecipe saves a new recipe, assigning its ID, content hash and
// clip time. Returns ECONFLICT if a recipe with identical content exists.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *recipeclip.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}

	recipe.ContentHash = hashRecipe(recipe)

	var existing string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM recipes WHERE content_hash = ?
	`, recipe.ContentHash).Scan(&existing)
	if err == nil {
		return recipeclip.Errorf(recipeclip.ECONFLICT, "recipe already saved as %s", existing)
	}
	if err != sql.ErrNoRows {
		return err
	}

	recipe.ID = uuid.New().String()
	recipe.ClippedAt = time.Now().UTC()

	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to encode ingredients: %w", err)
	}
	instructions, err := json.Marshal(recipe.Instructions)
	if err != nil {
		return fmt.Errorf("failed to encode instructions: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recipes (id, source_url, title, description, ingredients, instructions, content_hash, clipped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, recipe.ID, recipe.SourceURL, recipe.Title, recipe.Description, string(ingredients),
		string(instructions), recipe.ContentHash, recipe.ClippedAt.Format(time.RFC3339))

	return err
}

// FindRecipeByID retrieves a recipe by ID.
func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*recipeclip.Recipe, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, description, ingredients, instructions, content_hash, clipped_at
		FROM recipes
		WHERE id = ?
	`, id)

	recipe, err := scanRecipe(row.Scan)
	if err == sql.ErrNoRows {
		return nil, recipeclip.Errorf(recipeclip.ENOTFOUND, "recipe not found")
	}
	if err != nil {
		return nil, err
	}

	return recipe, nil
}

// FindRecipes retrieves recipes matching the filter.
func (s *RecipeService) FindRecipes(ctx context.Context, filter recipeclip.RecipeFilter) ([]*recipeclip.Recipe, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, description, ingredients, instructions, content_hash, clipped_at FROM recipes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Title != nil {
		query.WriteString(" AND title LIKE ?")
		args = append(args, "%"+*filter.Title+"%")
	}

	switch filter.SortBy {
	case recipeclip.SortByTitle:
		query.WriteString(" ORDER BY title ASC")
	default:
		query.WriteString(" ORDER BY clipped_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*recipeclip.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows.Scan)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recipes, nil
}

// DeleteRecipe permanently removes a recipe.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return recipeclip.Errorf(recipeclip.ENOTFOUND, "recipe not found")
	}

	return nil
}

// scanRecipe reads one recipe row using the given scan function, decoding
// the JSON array columns and the clip timestamp.
func scanRecipe(scan func(dest ...any) error) (*recipeclip.Recipe, error) {
	var recipe recipeclip.Recipe
	var ingredients, instructions, clippedAt string

	if err := scan(&recipe.ID, &recipe.SourceURL, &recipe.Title, &recipe.Description,
		&ingredients, &instructions, &recipe.ContentHash, &clippedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(ingredients), &recipe.Ingredients); err != nil {
		return nil, fmt.Errorf("failed to decode ingredients: %w", err)
	}
	if err := json.Unmarshal([]byte(instructions), &recipe.Instructions); err != nil {
		return nil, fmt.Errorf("failed to decode instructions: %w", err)
	}

	var err error
	recipe.ClippedAt, err = parseRFC3339(clippedAt, "clipped_at")
	if err != nil {
		return nil, err
	}

	return &recipe, nil
}
