package ffi

/*
#include "crocksdb.h"
*/
import "C"

import "unsafe"

// Property names exported by the native library. Each string aliases static
// native memory without copying; the memory lives for the whole process.
var (
	PropertyStats                  = staticString(Slice(C.crocksdb_property_name_stats))
	PropertyCFStats                = staticString(Slice(C.crocksdb_property_name_cf_stats))
	PropertyCFStatsNoFileHistogram = staticString(Slice(C.crocksdb_property_name_cf_stats_no_file_histogram))
	PropertyLevelStats             = staticString(Slice(C.crocksdb_property_name_level_stats))
	PropertyEstimateNumKeys        = staticString(Slice(C.crocksdb_property_name_estimate_num_keys))
	PropertyCurSizeAllMemTables    = staticString(Slice(C.crocksdb_property_name_cur_size_all_mem_tables))
	PropertyTotalSSTFilesSize      = staticString(Slice(C.crocksdb_property_name_total_sst_files_size))
	PropertyBackgroundErrors       = staticString(Slice(C.crocksdb_property_name_background_errors))
)

// staticString views s as an immutable string. s must reference memory that
// is never freed or written, such as a native constant.
func staticString(s Slice) string {
	if s.data_ == nil {
		return ""
	}
	return unsafe.String((*byte)(unsafe.Pointer(s.data_)), int(s.size_))
}
