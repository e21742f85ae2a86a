package output

import "portal-automation/internal/domain/entity"

type SnapshotStore interface {
	Save(name string, snapshot *entity.PageSnapshot) (string, error)
}
