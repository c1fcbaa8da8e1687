package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/repository/memory"
	"github.com/jeongjingoo/tech/internal/services"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	t.Helper()
	log, _ := test.NewNullLogger()
	out := &bytes.Buffer{}
	return &commandLine{stores: memory.NewStores(), log: log, out: out}, out
}

func run(cli *commandLine, args ...string) error {
	root := cli.rootCmd()
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func mockPassword(t *testing.T, pwd string, err error) {
	t.Helper()
	orig := readPasswordFunc
	readPasswordFunc = func(int) ([]byte, error) { return []byte(pwd), err }
	t.Cleanup(func() { readPasswordFunc = orig })
}

func Test_commandLine_addTechnician(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		password   string
		readErr    error
		wantErr    error
		wantErrStr string
	}{
		{name: "missing id", args: []string{"add-technician", "--name", "Kim"}, password: "pw", wantErrStr: `required flag(s) "id" not set`},
		{name: "empty password", args: []string{"add-technician", "--id", "kim", "--name", "Kim"}, password: "  ", wantErr: errEmptyPassword},
		{name: "prompt failure", args: []string{"add-technician", "--id", "kim", "--name", "Kim"}, readErr: errors.New("no tty"), wantErrStr: "no tty"},
		{name: "ok", args: []string{"add-technician", "--id", "kim", "--name", "Kim", "--team", "1팀"}, password: "s3cret"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cli, out := setup(t)
			mockPassword(t, tc.password, tc.readErr)

			err := run(cli, tc.args...)
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
				return
			case tc.wantErrStr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErrStr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), "technician kim added")

			tech, err := cli.stores.Technicians.FindByLoginID(context.Background(), "kim")
			require.NoError(t, err)
			assert.Equal(t, "1팀", tech.Team)
			ok, legacy := services.VerifyPassword(tech.Password, "s3cret")
			assert.True(t, ok)
			assert.False(t, legacy)
		})
	}
}

func Test_commandLine_hashPasswords(t *testing.T) {
	cli, out := setup(t)
	ctx := context.Background()

	hashed, err := services.HashPassword("already")
	require.NoError(t, err)
	for _, tech := range []models.Technician{
		{Name: "Kim", LoginID: "kim", Password: "plain"},
		{Name: "Lee", LoginID: "lee", Password: hashed},
	} {
		require.NoError(t, cli.stores.Technicians.Insert(ctx, &tech))
	}

	require.NoError(t, run(cli, "hash-passwords"))
	assert.Contains(t, out.String(), "1 password(s) hashed")

	kim, err := cli.stores.Technicians.FindByLoginID(ctx, "kim")
	require.NoError(t, err)
	assert.True(t, services.IsHashed(kim.Password))
	ok, _ := services.VerifyPassword(kim.Password, "plain")
	assert.True(t, ok)

	lee, err := cli.stores.Technicians.FindByLoginID(ctx, "lee")
	require.NoError(t, err)
	assert.Equal(t, hashed, lee.Password)
}

func Test_commandLine_import(t *testing.T) {
	cli, out := setup(t)

	path := filepath.Join(t.TempDir(), "schools.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"division", "level", "name"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"강남", "초", "Saebit"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"강남", "중", "Hanbit"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	require.NoError(t, run(cli, "import", path))
	assert.Contains(t, out.String(), "2 added, 0 updated, 0 errors")

	n, err := cli.stores.Schools.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	err = run(cli, "import", filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)

	err = run(cli, "import")
	assert.Error(t, err)
}

func Test_commandLine_ensureIndexes(t *testing.T) {
	cli, out := setup(t)
	require.NoError(t, run(cli, "ensure-indexes"))
	assert.Contains(t, out.String(), "no indexes")

	var called bool
	cli.ensureIndexes = func(context.Context) error {
		called = true
		return nil
	}
	require.NoError(t, run(cli, "ensure-indexes"))
	assert.True(t, called)
	assert.Contains(t, out.String(), "indexes ensured")
}

func Test_commandLine_open(t *testing.T) {
	cli, _ := setup(t)
	var opened, closed bool
	cli.open = func(context.Context) (func(), error) {
		opened = true
		return func() { closed = true }, nil
	}
	require.NoError(t, run(cli, "hash-passwords"))
	assert.True(t, opened)
	assert.True(t, closed)

	cli.open = func(context.Context) (func(), error) { return nil, errors.New("dial failed") }
	assert.EqualError(t, run(cli, "hash-passwords"), "dial failed")
}
