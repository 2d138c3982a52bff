package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teslo/internal/jdl"
	"teslo/internal/render"
)

func assemble(t *testing.T, text string) *render.Model {
	t.Helper()
	doc, err := jdl.Parse(text, jdl.Options{})
	require.NoError(t, err)
	return render.Assemble(doc)
}

func TestGenerateDDLTables(t *testing.T) {
	m := assemble(t, `enum Status { OPEN }
entity Task {
  title String required
  status Status
  dueDate LocalDate
  estimate Long
}`)

	ddl, err := GenerateDDL(m)
	require.NoError(t, err)

	tables := ddl["000_tables"]
	assert.Contains(t, tables, `create table if not exists "tasks"`)
	assert.Contains(t, tables, `"id" text primary key`)
	assert.Contains(t, tables, `"title" text not null`)
	assert.Contains(t, tables, `"status" text null`) // enum stored as text
	assert.Contains(t, tables, `"due_date" date null`)
	assert.Contains(t, tables, `"estimate" bigint null`)
	assert.NotContains(t, ddl, "200_foreign_keys")
}

func TestGenerateDDLForeignKeys(t *testing.T) {
	m := assemble(t, `entity Order { total Long }
entity Customer { name String }
relationship ManyToOne { Order(customer) to Customer }
relationship OneToMany { Customer to Order }`)

	ddl, err := GenerateDDL(m)
	require.NoError(t, err)

	assert.Contains(t, ddl["000_tables"], `"customer_id" text null`)
	// the collection side carries no column
	assert.NotContains(t, ddl["000_tables"], `"orders_id"`)

	fks := ddl["200_foreign_keys"]
	assert.Contains(t, fks, `alter table "orders" add constraint order_customer_fk`)
	assert.Contains(t, fks, `references "customers"(id)`)
}

func TestGenerateDDLSkipsFKForDanglingTarget(t *testing.T) {
	m := assemble(t, "entity Order { total Long }\nrelationship ManyToOne { Order to Ghost }")

	ddl, err := GenerateDDL(m)
	require.NoError(t, err)

	// column kept, constraint skipped
	assert.Contains(t, ddl["000_tables"], `"ghost_id" text null`)
	_, hasFks := ddl["200_foreign_keys"]
	assert.False(t, hasFks)
}

func TestGenerateDDLColumnCollision(t *testing.T) {
	m := assemble(t, "entity Bad { dueDate LocalDate\n DueDate Instant }")

	_, err := GenerateDDL(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collides")
}

func TestTableNameGuards(t *testing.T) {
	assert.Equal(t, "orders", tableName("Order"))
	assert.Equal(t, "categorys", tableName("Category")) // naive plural, same as the assembler
	assert.Equal(t, "t_values", tableName("Value"))     // plural collides with a SQL keyword
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "due_date", snakeCase("dueDate"))
	assert.Equal(t, "created_by", snakeCase("createdBy"))
	assert.Equal(t, "name", snakeCase("name"))
	assert.Equal(t, "id", snakeCase("id"))
}
