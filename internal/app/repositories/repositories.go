package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	RoleRepository       *RoleRepository
	InternshipRepository *InternshipRepository
	TimePeriodRepository *TimePeriodRepository
	FlagRepository       *FlagRepository
	FavoriteRepository   *FavoriteRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		RoleRepository:       NewRoleRepository(db),
		InternshipRepository: NewInternshipRepository(db),
		TimePeriodRepository: NewTimePeriodRepository(db),
		FlagRepository:       NewFlagRepository(db),
		FavoriteRepository:   NewFavoriteRepository(db),
	}
}
