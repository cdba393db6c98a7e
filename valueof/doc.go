// Package valueof builds [paramstyle.Value] trees from arbitrary Go values.
//
// Structs become mappings in field declaration order, named by their "param"
// struct tag. String-keyed maps become mappings sorted by key, slices and
// arrays become sequences, and booleans, numbers and strings become scalars.
// Types may take over their own description by implementing
// [paramstyle.Valuer], [Marshaler] or [encoding.TextMarshaler].
package valueof
