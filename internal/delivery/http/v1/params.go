package v1

import (
	"errors"
	"strconv"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/listview"
	"go-portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// parseListQuery reads the shared list parameters. Page is 1-based on
// the wire; missing values fall back to the first full-size page.
func parseListQuery(c *gin.Context) domain.ListQuery {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(listview.DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = listview.DefaultPageSize
	}
	return domain.ListQuery{
		Search:   c.Query("search"),
		Category: c.DefaultQuery("category", listview.AllCategories),
		Page:     page,
		PageSize: pageSize,
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Identificador inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// bindError shapes a binding failure: field-level messages for
// validation errors, a generic message for malformed JSON.
func bindError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := validation.FormatValidationErrors(err)
		if len(msgs) > 0 {
			return apperror.BadRequest(msgs[0])
		}
	}
	return apperror.BadRequest("Requisição inválida")
}
