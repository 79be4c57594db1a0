package mappers

import (
	"academy/internal/domain/course"
	"academy/internal/infrastructure/persistence/models"
)

// CourseMapper provides methods for converting between domain and model
type CourseMapper interface {
	ToDomain(model *models.CourseModel) (*course.Course, error)
	ToModel(domain *course.Course) *models.CourseModel
	ToDomainList(modelList []*models.CourseModel) ([]*course.Course, error)
}

// CourseMapperImpl implements CourseMapper
type CourseMapperImpl struct{}

// NewCourseMapper creates a new CourseMapper
func NewCourseMapper() CourseMapper {
	return &CourseMapperImpl{}
}

// ToDomain converts a CourseModel to a Course domain entity
func (m *CourseMapperImpl) ToDomain(model *models.CourseModel) (*course.Course, error) {
	if model == nil {
		return nil, nil
	}

	return course.Reconstruct(course.ReconstructParams{
		ID:            model.ID,
		Title:         model.Title,
		Description:   model.Description,
		Category:      model.Category,
		DurationHours: model.DurationHours,
		Status:        course.Status(model.Status),
		PublishedAt:   model.PublishedAt,
		CreatedBy:     model.CreatedBy,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
}

// ToModel converts a Course domain entity to a CourseModel
func (m *CourseMapperImpl) ToModel(domain *course.Course) *models.CourseModel {
	if domain == nil {
		return nil
	}

	return &models.CourseModel{
		ID:            domain.ID(),
		Title:         domain.Title(),
		Description:   domain.Description(),
		Category:      domain.Category(),
		DurationHours: domain.DurationHours(),
		Status:        string(domain.Status()),
		PublishedAt:   domain.PublishedAt(),
		CreatedBy:     domain.CreatedBy(),
		CreatedAt:     domain.CreatedAt(),
		UpdatedAt:     domain.UpdatedAt(),
	}
}

// ToDomainList converts a list of CourseModel to domain entities
func (m *CourseMapperImpl) ToDomainList(modelList []*models.CourseModel) ([]*course.Course, error) {
	if modelList == nil {
		return nil, nil
	}

	domains := make([]*course.Course, 0, len(modelList))
	for _, model := range modelList {
		domain, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		if domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains, nil
}
