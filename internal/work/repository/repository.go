package repository

// Repositories 仓库集合
type Repositories struct {
	Employee *EmployeeRepository
	WorkCard *WorkCardRepository
	Session  *SessionRepository
	Report   *ReportRepository

	store *Store
}

// NewRepositories 创建仓库集合，四个仓库共享同一个 Store
func NewRepositories(store *Store) *Repositories {
	return &Repositories{
		Employee: NewEmployeeRepository(store),
		WorkCard: NewWorkCardRepository(store),
		Session:  NewSessionRepository(store),
		Report:   NewReportRepository(store),
		store:    store,
	}
}

// Store 返回底层存储（看板统计等聚合查询使用）
func (r *Repositories) Store() *Store {
	return r.store
}
