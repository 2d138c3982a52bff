package gen

import (
	"os"
	"path/filepath"
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

const orderDoc = `enum Status { OPEN, SHIPPED }
entity Order {
  name String required
  status Status
  placed Instant // when the order was placed
}
entity Customer { email String }
relationship ManyToOne { Order(customer) to Customer(orders) }
relationship OneToMany { Customer to Order }`

func TestRenderEntity(t *testing.T) {
	m := assemble(t, orderDoc)
	require.Len(t, m.Entities, 2)

	out, err := RenderEntity(m.Entities[0])
	require.NoError(t, err)
	ts := string(out)

	assert.Contains(t, ts, "export interface Order {")
	assert.Contains(t, ts, "name: string;")     // required -> no '?'
	assert.Contains(t, ts, "status?: Status;")  // enum type passes through
	assert.Contains(t, ts, "placed?: Date; // when the order was placed")
	assert.Contains(t, ts, "import { Status } from './status.enum';")
	assert.Contains(t, ts, "import { Customer } from './customer.model';")
	assert.Contains(t, ts, "customer?: Customer;") // role field names the property
}

func TestRenderEntityCollectionSide(t *testing.T) {
	m := assemble(t, orderDoc)
	out, err := RenderEntity(m.Entities[1])
	require.NoError(t, err)
	ts := string(out)

	// OneToMany without a role field falls back to the derived plural
	assert.Contains(t, ts, "orders?: Order[];")
	assert.Contains(t, ts, "import { Order } from './order.model';")
}

func TestRenderEnum(t *testing.T) {
	m := assemble(t, orderDoc)
	require.Len(t, m.Enums, 1)

	out, err := RenderEnum(m.Enums[0])
	require.NoError(t, err)
	ts := string(out)

	assert.Contains(t, ts, "export enum Status {")
	assert.Contains(t, ts, "OPEN = 'OPEN',")
	assert.Contains(t, ts, "SHIPPED = 'SHIPPED',")
}

func TestWriteAll(t *testing.T) {
	m := assemble(t, orderDoc)
	dir := t.TempDir()

	written, err := WriteAll(m, filepath.Join(dir, "out"))
	require.NoError(t, err)
	require.Len(t, written, 3) // two entities + one enum

	b, err := os.ReadFile(filepath.Join(dir, "out", "order.model.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "export interface Order")

	_, err = os.Stat(filepath.Join(dir, "out", "status.enum.ts"))
	assert.NoError(t, err)
}

func TestSelfReferenceNeedsNoImport(t *testing.T) {
	m := assemble(t, "entity Node { name String }\nrelationship OneToMany { Node(children) to Node }")
	out, err := RenderEntity(m.Entities[0])
	require.NoError(t, err)
	ts := string(out)

	assert.NotContains(t, ts, "import { Node }")
	assert.Contains(t, ts, "children?: Node[];")
}
