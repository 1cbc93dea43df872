package group

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nekogravitycat/group-read-service/internal/auth"
)

func TestHierarchyPattern(t *testing.T) {
	assert.Equal(t, ".%", HierarchyPattern("."))
	assert.Equal(t, ".1.2.%", HierarchyPattern(".1.2."))
	assert.Equal(t, `.1\_2.%`, HierarchyPattern(".1_2."), "wildcards inside the path are literal")
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%Wes%", containsPattern("Wes"))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}

func TestDefaultOfficeID(t *testing.T) {
	caller := auth.Caller{OfficeID: 3, OfficeHierarchy: ".1.3."}

	assert.Equal(t, int64(3), DefaultOfficeID(nil, caller))

	explicit := int64(5)
	assert.Equal(t, int64(5), DefaultOfficeID(&explicit, caller))
}
