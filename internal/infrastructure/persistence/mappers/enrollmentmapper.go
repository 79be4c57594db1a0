package mappers

import (
	"academy/internal/domain/enrollment"
	"academy/internal/infrastructure/persistence/models"
)

// EnrollmentMapper provides methods for converting between domain and model
type EnrollmentMapper interface {
	ToDomain(model *models.EnrollmentModel) (*enrollment.Enrollment, error)
	ToModel(domain *enrollment.Enrollment) *models.EnrollmentModel
	ToDomainList(modelList []*models.EnrollmentModel) ([]*enrollment.Enrollment, error)
}

// EnrollmentMapperImpl implements EnrollmentMapper
type EnrollmentMapperImpl struct{}

// NewEnrollmentMapper creates a new EnrollmentMapper
func NewEnrollmentMapper() EnrollmentMapper {
	return &EnrollmentMapperImpl{}
}

// ToDomain converts an EnrollmentModel to an Enrollment domain entity
func (m *EnrollmentMapperImpl) ToDomain(model *models.EnrollmentModel) (*enrollment.Enrollment, error) {
	if model == nil {
		return nil, nil
	}

	return enrollment.Reconstruct(enrollment.ReconstructParams{
		ID:             model.ID,
		EmployeeID:     model.EmployeeID,
		CourseID:       model.CourseID,
		EnrollmentType: enrollment.Type(model.EnrollmentType),
		Status:         enrollment.Status(model.Status),
		AssignmentType: enrollment.AssignmentType(model.AssignmentType),
		EnrolledDate:   model.EnrolledDate,
		DueDate:        model.DueDate,
		CompletedDate:  model.CompletedDate,
		Progress:       model.Progress,
		AssignedBy:     model.AssignedBy,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
}

// ToModel converts an Enrollment domain entity to an EnrollmentModel
func (m *EnrollmentMapperImpl) ToModel(domain *enrollment.Enrollment) *models.EnrollmentModel {
	if domain == nil {
		return nil
	}

	return &models.EnrollmentModel{
		ID:             domain.ID(),
		EmployeeID:     domain.EmployeeID(),
		CourseID:       domain.CourseID(),
		EnrollmentType: string(domain.EnrollmentType()),
		Status:         string(domain.Status()),
		AssignmentType: string(domain.AssignmentType()),
		EnrolledDate:   domain.EnrolledDate(),
		DueDate:        domain.DueDate(),
		CompletedDate:  domain.CompletedDate(),
		Progress:       domain.Progress(),
		AssignedBy:     domain.AssignedBy(),
		CreatedAt:      domain.CreatedAt(),
		UpdatedAt:      domain.UpdatedAt(),
	}
}

// ToDomainList converts a list of EnrollmentModel to domain entities
func (m *EnrollmentMapperImpl) ToDomainList(modelList []*models.EnrollmentModel) ([]*enrollment.Enrollment, error) {
	if modelList == nil {
		return nil, nil
	}

	domains := make([]*enrollment.Enrollment, 0, len(modelList))
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
