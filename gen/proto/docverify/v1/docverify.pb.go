// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docverify/v1/docverify.proto

package docverifyv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SubmitDocumentRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Path  string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	// When true the document is queued and the response carries no job outcome.
	Async         bool `protobuf:"varint,2,opt,name=async,proto3" json:"async,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentRequest) Reset() {
	*x = SubmitDocumentRequest{}
	mi := &file_docverify_v1_docverify_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentRequest) ProtoMessage() {}

func (x *SubmitDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docverify_v1_docverify_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentRequest.ProtoReflect.Descriptor instead.
func (*SubmitDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docverify_v1_docverify_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitDocumentRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *SubmitDocumentRequest) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

type SubmitDocumentResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	// RFC 3339.
	UploadedAt string `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath string `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	// True when the job was enqueued instead of run inline.
	Queued bool `protobuf:"varint,7,opt,name=queued,proto3" json:"queued,omitempty"`
	// Job id of the synchronous run; empty when queued.
	JobId string `protobuf:"bytes,8,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	// Verification error for a successfully registered document.
	Error         string `protobuf:"bytes,9,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentResponse) Reset() {
	*x = SubmitDocumentResponse{}
	mi := &file_docverify_v1_docverify_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentResponse) ProtoMessage() {}

func (x *SubmitDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docverify_v1_docverify_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentResponse.ProtoReflect.Descriptor instead.
func (*SubmitDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docverify_v1_docverify_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *SubmitDocumentResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *SubmitDocumentResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *SubmitDocumentResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *SubmitDocumentResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *SubmitDocumentResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *SubmitDocumentResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

func (x *SubmitDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *SubmitDocumentResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type GetVerificationRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Exactly one of job_id or document_id must be set.
	JobId         string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	DocumentId    string `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVerificationRequest) Reset() {
	*x = GetVerificationRequest{}
	mi := &file_docverify_v1_docverify_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVerificationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVerificationRequest) ProtoMessage() {}

func (x *GetVerificationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docverify_v1_docverify_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVerificationRequest.ProtoReflect.Descriptor instead.
func (*GetVerificationRequest) Descriptor() ([]byte, []int) {
	return file_docverify_v1_docverify_proto_rawDescGZIP(), []int{2}
}

func (x *GetVerificationRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetVerificationRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetVerificationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Verification  *Verification          `protobuf:"bytes,1,opt,name=verification,proto3" json:"verification,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVerificationResponse) Reset() {
	*x = GetVerificationResponse{}
	mi := &file_docverify_v1_docverify_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVerificationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVerificationResponse) ProtoMessage() {}

func (x *GetVerificationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docverify_v1_docverify_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVerificationResponse.ProtoReflect.Descriptor instead.
func (*GetVerificationResponse) Descriptor() ([]byte, []int) {
	return file_docverify_v1_docverify_proto_rawDescGZIP(), []int{3}
}

func (x *GetVerificationResponse) GetVerification() *Verification {
	if x != nil {
		return x.Verification
	}
	return nil
}

type ListVerificationsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// YYYY-MM-DD, inclusive. Empty bounds are open.
	FromDate      string `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVerificationsRequest) Reset() {
	*x = ListVerificationsRequest{}
	mi := &file_docverify_v1_docverify_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVerificationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVerificationsRequest) ProtoMessage() {}

func (x *ListVerificationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docverify_v1_docverify_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVerificationsRequest.ProtoReflect.Descriptor instead.
func (*ListVerificationsRequest) Descriptor() ([]byte, []int) {
	return file_docverify_v1_docverify_proto_rawDescGZIP(), []int{4}
}

func (x *ListVerificationsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListVerificationsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListVerificationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Verifications []*Verification        `protobuf:"bytes,1,rep,name=verifications,proto3" json:"verifications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVerificationsResponse) Reset() {
	*x = ListVerificationsResponse{}
	mi := &file_docverify_v1_docverify_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVerificationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVerificationsResponse) ProtoMessage() {}

func (x *ListVerificationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docverify_v1_docverify_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVerificationsResponse.ProtoReflect.Descriptor instead.
func (*ListVerificationsResponse) Descriptor() ([]byte, []int) {
	return file_docverify_v1_docverify_proto_rawDescGZIP(), []int{5}
}

func (x *ListVerificationsResponse) GetVerifications() []*Verification {
	if x != nil {
		return x.Verifications
	}
	return nil
}

type ExportVerificationsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// YYYY-MM-DD, inclusive. Empty bounds are open.
	FromDate      string `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportVerificationsRequest) Reset() {
	*x = ExportVerificationsRequest{}
	mi := &file_docverify_v1_docverify_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportVerificationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportVerificationsRequest) ProtoMessage() {}

func (x *ExportVerificationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docverify_v1_docverify_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportVerificationsRequest.ProtoReflect.Descriptor instead.
func (*ExportVerificationsRequest) Descriptor() ([]byte, []int) {
	return file_docverify_v1_docverify_proto_rawDescGZIP(), []int{6}
}

func (x *ExportVerificationsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportVerificationsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportVerificationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportVerificationsResponse) Reset() {
	*x = ExportVerificationsResponse{}
	mi := &file_docverify_v1_docverify_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportVerificationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportVerificationsResponse) ProtoMessage() {}

func (x *ExportVerificationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docverify_v1_docverify_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportVerificationsResponse.ProtoReflect.Descriptor instead.
func (*ExportVerificationsResponse) Descriptor() ([]byte, []int) {
	return file_docverify_v1_docverify_proto_rawDescGZIP(), []int{7}
}

func (x *ExportVerificationsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

// DateFinding is one region's date-extraction outcome.
type DateFinding struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Region string                 `protobuf:"bytes,1,opt,name=region,proto3" json:"region,omitempty"`
	// YYYY-MM-DD; empty when the region held nothing date-shaped.
	Date              string  `protobuf:"bytes,2,opt,name=date,proto3" json:"date,omitempty"`
	Format            string  `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	Confidence        float32 `protobuf:"fixed32,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	ExtractedFromText string  `protobuf:"bytes,5,opt,name=extracted_from_text,json=extractedFromText,proto3" json:"extracted_from_text,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *DateFinding) Reset() {
	*x = DateFinding{}
	mi := &file_docverify_v1_docverify_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DateFinding) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DateFinding) ProtoMessage() {}

func (x *DateFinding) ProtoReflect() protoreflect.Message {
	mi := &file_docverify_v1_docverify_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DateFinding.ProtoReflect.Descriptor instead.
func (*DateFinding) Descriptor() ([]byte, []int) {
	return file_docverify_v1_docverify_proto_rawDescGZIP(), []int{8}
}

func (x *DateFinding) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *DateFinding) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *DateFinding) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *DateFinding) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *DateFinding) GetExtractedFromText() string {
	if x != nil {
		return x.ExtractedFromText
	}
	return ""
}

type Verification struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Id         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Format     string                 `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	Status     string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	// RFC 3339.
	StartedAt string `protobuf:"bytes,5,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	// RFC 3339; empty while the job is still running.
	FinishedAt          string         `protobuf:"bytes,6,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	ErrorMessage        string         `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	OcrConfidence       *float32       `protobuf:"fixed32,8,opt,name=ocr_confidence,json=ocrConfidence,proto3,oneof" json:"ocr_confidence,omitempty"`
	Findings            []*DateFinding `protobuf:"bytes,9,rep,name=findings,proto3" json:"findings,omitempty"`
	DateVerdict         string         `protobuf:"bytes,10,opt,name=date_verdict,json=dateVerdict,proto3" json:"date_verdict,omitempty"`
	StampPresent        *bool          `protobuf:"varint,11,opt,name=stamp_present,json=stampPresent,proto3,oneof" json:"stamp_present,omitempty"`
	StampConfidence     *float32       `protobuf:"fixed32,12,opt,name=stamp_confidence,json=stampConfidence,proto3,oneof" json:"stamp_confidence,omitempty"`
	SignaturePresent    *bool          `protobuf:"varint,13,opt,name=signature_present,json=signaturePresent,proto3,oneof" json:"signature_present,omitempty"`
	SignatureConfidence *float32       `protobuf:"fixed32,14,opt,name=signature_confidence,json=signatureConfidence,proto3,oneof" json:"signature_confidence,omitempty"`
	OverallConfidence   *float32       `protobuf:"fixed32,15,opt,name=overall_confidence,json=overallConfidence,proto3,oneof" json:"overall_confidence,omitempty"`
	NeedsReview         bool           `protobuf:"varint,16,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	ModelName           string         `protobuf:"bytes,17,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Verification) Reset() {
	*x = Verification{}
	mi := &file_docverify_v1_docverify_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Verification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Verification) ProtoMessage() {}

func (x *Verification) ProtoReflect() protoreflect.Message {
	mi := &file_docverify_v1_docverify_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Verification.ProtoReflect.Descriptor instead.
func (*Verification) Descriptor() ([]byte, []int) {
	return file_docverify_v1_docverify_proto_rawDescGZIP(), []int{9}
}

func (x *Verification) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Verification) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Verification) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *Verification) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Verification) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Verification) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *Verification) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Verification) GetOcrConfidence() float32 {
	if x != nil && x.OcrConfidence != nil {
		return *x.OcrConfidence
	}
	return 0
}

func (x *Verification) GetFindings() []*DateFinding {
	if x != nil {
		return x.Findings
	}
	return nil
}

func (x *Verification) GetDateVerdict() string {
	if x != nil {
		return x.DateVerdict
	}
	return ""
}

func (x *Verification) GetStampPresent() bool {
	if x != nil && x.StampPresent != nil {
		return *x.StampPresent
	}
	return false
}

func (x *Verification) GetStampConfidence() float32 {
	if x != nil && x.StampConfidence != nil {
		return *x.StampConfidence
	}
	return 0
}

func (x *Verification) GetSignaturePresent() bool {
	if x != nil && x.SignaturePresent != nil {
		return *x.SignaturePresent
	}
	return false
}

func (x *Verification) GetSignatureConfidence() float32 {
	if x != nil && x.SignatureConfidence != nil {
		return *x.SignatureConfidence
	}
	return 0
}

func (x *Verification) GetOverallConfidence() float32 {
	if x != nil && x.OverallConfidence != nil {
		return *x.OverallConfidence
	}
	return 0
}

func (x *Verification) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Verification) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

var File_docverify_v1_docverify_proto protoreflect.FileDescriptor

const file_docverify_v1_docverify_proto_rawDesc = "" +
	"\n" +
	"\x1cdocverify/v1/docverify.proto\x12\fdocverify.v1\"A\n" +
	"\x15SubmitDocumentRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x14\n" +
	"\x05async\x18\x02 \x01(\bR\x05async\"\xa9\x02\n" +
	"\x16SubmitDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x16\n" +
	"\x06queued\x18\a \x01(\bR\x06queued\x12\x15\n" +
	"\x06job_id\x18\b \x01(\tR\x05jobId\x12\x14\n" +
	"\x05error\x18\t \x01(\tR\x05error\"P\n" +
	"\x16GetVerificationRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\"Y\n" +
	"\x17GetVerificationResponse\x12>\n" +
	"\fverification\x18\x01 \x01(\v2\x1a.docverify.v1.VerificationR\fverification\"P\n" +
	"\x18ListVerificationsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"]\n" +
	"\x19ListVerificationsResponse\x12@\n" +
	"\rverifications\x18\x01 \x03(\v2\x1a.docverify.v1.VerificationR\rverifications\"R\n" +
	"\x1aExportVerificationsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"1\n" +
	"\x1bExportVerificationsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xa1\x01\n" +
	"\vDateFinding\x12\x16\n" +
	"\x06region\x18\x01 \x01(\tR\x06region\x12\x12\n" +
	"\x04date\x18\x02 \x01(\tR\x04date\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x02R\n" +
	"confidence\x12.\n" +
	"\x13extracted_from_text\x18\x05 \x01(\tR\x11extractedFromText\"\x94\x06\n" +
	"\fVerification\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"started_at\x18\x05 \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x06 \x01(\tR\n" +
	"finishedAt\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12*\n" +
	"\x0eocr_confidence\x18\b \x01(\x02H\x00R\rocrConfidence\x88\x01\x01\x125\n" +
	"\bfindings\x18\t \x03(\v2\x19.docverify.v1.DateFindingR\bfindings\x12!\n" +
	"\fdate_verdict\x18\n" +
	" \x01(\tR\vdateVerdict\x12(\n" +
	"\rstamp_present\x18\v \x01(\bH\x01R\fstampPresent\x88\x01\x01\x12.\n" +
	"\x10stamp_confidence\x18\f \x01(\x02H\x02R\x0fstampConfidence\x88\x01\x01\x120\n" +
	"\x11signature_present\x18\r \x01(\bH\x03R\x10signaturePresent\x88\x01\x01\x126\n" +
	"\x14signature_confidence\x18\x0e \x01(\x02H\x04R\x13signatureConfidence\x88\x01\x01\x122\n" +
	"\x12overall_confidence\x18\x0f \x01(\x02H\x05R\x11overallConfidence\x88\x01\x01\x12!\n" +
	"\fneeds_review\x18\x10 \x01(\bR\vneedsReview\x12\x1d\n" +
	"\n" +
	"model_name\x18\x11 \x01(\tR\tmodelNameB\x11\n" +
	"\x0f_ocr_confidenceB\x10\n" +
	"\x0e_stamp_presentB\x13\n" +
	"\x11_stamp_confidenceB\x14\n" +
	"\x12_signature_presentB\x17\n" +
	"\x15_signature_confidenceB\x15\n" +
	"\x13_overall_confidence2\xb8\x02\n" +
	"\x13VerificationService\x12[\n" +
	"\x0eSubmitDocument\x12#.docverify.v1.SubmitDocumentRequest\x1a$.docverify.v1.SubmitDocumentResponse\x12^\n" +
	"\x0fGetVerification\x12$.docverify.v1.GetVerificationRequest\x1a%.docverify.v1.GetVerificationResponse\x12d\n" +
	"\x11ListVerifications\x12&.docverify.v1.ListVerificationsRequest\x1a'.docverify.v1.ListVerificationsResponse2{\n" +
	"\rExportService\x12j\n" +
	"\x13ExportVerifications\x12(.docverify.v1.ExportVerificationsRequest\x1a).docverify.v1.ExportVerificationsResponseBBZ@github.com/inkspect/docverify/gen/proto/docverify/v1;docverifyv1b\x06proto3"

var (
	file_docverify_v1_docverify_proto_rawDescOnce sync.Once
	file_docverify_v1_docverify_proto_rawDescData []byte
)

func file_docverify_v1_docverify_proto_rawDescGZIP() []byte {
	file_docverify_v1_docverify_proto_rawDescOnce.Do(func() {
		file_docverify_v1_docverify_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docverify_v1_docverify_proto_rawDesc), len(file_docverify_v1_docverify_proto_rawDesc)))
	})
	return file_docverify_v1_docverify_proto_rawDescData
}

var file_docverify_v1_docverify_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_docverify_v1_docverify_proto_goTypes = []any{
	(*SubmitDocumentRequest)(nil),       // 0: docverify.v1.SubmitDocumentRequest
	(*SubmitDocumentResponse)(nil),      // 1: docverify.v1.SubmitDocumentResponse
	(*GetVerificationRequest)(nil),      // 2: docverify.v1.GetVerificationRequest
	(*GetVerificationResponse)(nil),     // 3: docverify.v1.GetVerificationResponse
	(*ListVerificationsRequest)(nil),    // 4: docverify.v1.ListVerificationsRequest
	(*ListVerificationsResponse)(nil),   // 5: docverify.v1.ListVerificationsResponse
	(*ExportVerificationsRequest)(nil),  // 6: docverify.v1.ExportVerificationsRequest
	(*ExportVerificationsResponse)(nil), // 7: docverify.v1.ExportVerificationsResponse
	(*DateFinding)(nil),                 // 8: docverify.v1.DateFinding
	(*Verification)(nil),                // 9: docverify.v1.Verification
}
var file_docverify_v1_docverify_proto_depIdxs = []int32{
	9, // 0: docverify.v1.GetVerificationResponse.verification:type_name -> docverify.v1.Verification
	9, // 1: docverify.v1.ListVerificationsResponse.verifications:type_name -> docverify.v1.Verification
	8, // 2: docverify.v1.Verification.findings:type_name -> docverify.v1.DateFinding
	0, // 3: docverify.v1.VerificationService.SubmitDocument:input_type -> docverify.v1.SubmitDocumentRequest
	2, // 4: docverify.v1.VerificationService.GetVerification:input_type -> docverify.v1.GetVerificationRequest
	4, // 5: docverify.v1.VerificationService.ListVerifications:input_type -> docverify.v1.ListVerificationsRequest
	6, // 6: docverify.v1.ExportService.ExportVerifications:input_type -> docverify.v1.ExportVerificationsRequest
	1, // 7: docverify.v1.VerificationService.SubmitDocument:output_type -> docverify.v1.SubmitDocumentResponse
	3, // 8: docverify.v1.VerificationService.GetVerification:output_type -> docverify.v1.GetVerificationResponse
	5, // 9: docverify.v1.VerificationService.ListVerifications:output_type -> docverify.v1.ListVerificationsResponse
	7, // 10: docverify.v1.ExportService.ExportVerifications:output_type -> docverify.v1.ExportVerificationsResponse
	7, // [7:11] is the sub-list for method output_type
	3, // [3:7] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_docverify_v1_docverify_proto_init() }
func file_docverify_v1_docverify_proto_init() {
	if File_docverify_v1_docverify_proto != nil {
		return
	}
	file_docverify_v1_docverify_proto_msgTypes[9].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docverify_v1_docverify_proto_rawDesc), len(file_docverify_v1_docverify_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_docverify_v1_docverify_proto_goTypes,
		DependencyIndexes: file_docverify_v1_docverify_proto_depIdxs,
		MessageInfos:      file_docverify_v1_docverify_proto_msgTypes,
	}.Build()
	File_docverify_v1_docverify_proto = out.File
	file_docverify_v1_docverify_proto_goTypes = nil
	file_docverify_v1_docverify_proto_depIdxs = nil
}
