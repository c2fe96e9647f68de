// File: internal/vmem/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package vmem allocates page-rounded memory regions for byte rings.
//
// On Linux and the BSD family a region is mirrored: one backing object
// (memfd or an unlinked temporary file) is mapped twice, back to back, so
// that offset k and offset k+size address the same page. Elsewhere, or when
// mirroring fails, a plain allocation of twice the size is returned and the
// ring keeps both halves in sync by copying.
package vmem
