package shared

// Task types handled by the worker
const (
	TypeTransformSnapshot = "snapshot:transform"
	TypeScanIntake        = "snapshot:scan_intake"
)

// Queue names
const (
	QueueTransform = "transform"
	QueueDefault   = "default"
)

// TransformSnapshotPayload carries the object-store key of one raw
// snapshot document. One task = one document = one unit of work.
type TransformSnapshotPayload struct {
	DocumentKey string `json:"document_key"`
}

// ScanIntakePayload is empty; the scan job lists the intake prefix itself.
type ScanIntakePayload struct{}
