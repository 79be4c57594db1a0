package mappers

import (
	"academy/internal/domain/employee"
	"academy/internal/infrastructure/persistence/models"
)

// EmployeeMapper provides methods for converting between domain and model
type EmployeeMapper interface {
	ToDomain(model *models.EmployeeModel) (*employee.Employee, error)
	ToModel(domain *employee.Employee) *models.EmployeeModel
	ToDomainList(modelList []*models.EmployeeModel) ([]*employee.Employee, error)
}

// EmployeeMapperImpl implements EmployeeMapper
type EmployeeMapperImpl struct{}

// NewEmployeeMapper creates a new EmployeeMapper
func NewEmployeeMapper() EmployeeMapper {
	return &EmployeeMapperImpl{}
}

// ToDomain converts an EmployeeModel to an Employee domain entity
func (m *EmployeeMapperImpl) ToDomain(model *models.EmployeeModel) (*employee.Employee, error) {
	if model == nil {
		return nil, nil
	}

	return employee.Reconstruct(employee.ReconstructParams{
		ID:             model.ID,
		EmployeeID:     model.EmployeeID,
		FirstName:      model.FirstName,
		LastName:       model.LastName,
		Email:          model.Email,
		Department:     model.Department,
		Designation:    model.Designation,
		OfficeLocation: model.OfficeLocation,
		EmploymentType: employee.EmploymentType(model.EmploymentType),
		WorkMode:       employee.WorkMode(model.WorkMode),
		DateOfJoining:  model.DateOfJoining,
		DateOfBirth:    model.DateOfBirth,
		Status:         employee.Status(model.Status),
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
}

// ToModel converts an Employee domain entity to an EmployeeModel
func (m *EmployeeMapperImpl) ToModel(domain *employee.Employee) *models.EmployeeModel {
	if domain == nil {
		return nil
	}

	return &models.EmployeeModel{
		ID:             domain.ID(),
		EmployeeID:     domain.EmployeeID(),
		FirstName:      domain.FirstName(),
		LastName:       domain.LastName(),
		Email:          domain.Email(),
		Department:     domain.Department(),
		Designation:    domain.Designation(),
		OfficeLocation: domain.OfficeLocation(),
		EmploymentType: string(domain.EmploymentType()),
		WorkMode:       string(domain.WorkMode()),
		DateOfJoining:  domain.DateOfJoining(),
		DateOfBirth:    domain.DateOfBirth(),
		Status:         string(domain.Status()),
		CreatedAt:      domain.CreatedAt(),
		UpdatedAt:      domain.UpdatedAt(),
	}
}

// ToDomainList converts a list of EmployeeModel to domain entities
func (m *EmployeeMapperImpl) ToDomainList(modelList []*models.EmployeeModel) ([]*employee.Employee, error) {
	if modelList == nil {
		return nil, nil
	}

	domains := make([]*employee.Employee, 0, len(modelList))
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
