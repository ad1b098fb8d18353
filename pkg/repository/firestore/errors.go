package firestore

import "github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/interfaces"

var ErrNotFound = interfaces.ErrNotFound
