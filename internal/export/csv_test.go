package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ereporting/internal/dashboard"
)

func TestWriteKPIsCSV(t *testing.T) {
	svc := NewService(dashboard.NewService())

	var buf bytes.Buffer
	require.NoError(t, svc.WriteKPIsCSV(context.Background(), &buf))

	want := "area,metric,value\n" +
		"Budget,executionRate,75\n" +
		"PPM,compliance,82\n" +
		"RH,hiringRate,67\n" +
		"Trésorerie,liquidityDays,45\n" +
		"Gouvernance,auditsClosed,12\n"
	assert.Equal(t, want, buf.String())
}
