// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// formatter renders one event's body text (everything after "name: "
// in the output line) from its raw payload and named-field view. The
// table below keys each formatter by the event format's exact,
// byte-for-byte print_fmt string, per §4.7 "Dispatch" — never by event
// name, since the same name can carry more than one kernel-variant
// print_fmt and a near-identical print_fmt can belong to an unrelated
// event.
type formatter func(payload []byte, fv fieldView) string

// The printFmt* constants are the verbatim print_fmt strings found
// in the event-format segment for each known tracepoint. Kernel
// variants ("_hm" builds vs. mainline) emit different literal
// strings for logically the same event, so both get their own entry
// and their own formatter.
const (
	printFmtSchedWakeupHM = `"comm=%s pid=%d prio=%d target_cpu=%03d", REC->pname, REC->pid, REC->prio, REC->target_cpu`
	printFmtSchedWakeup   = `"comm=%s pid=%d prio=%d target_cpu=%03d", REC->comm, REC->pid, REC->prio, REC->target_cpu`

	printFmtSchedSwitchHM = `"prev_comm=%s prev_pid=%d prev_prio=%d prev_state=%s" " ==> next_comm=%s next_pid=%d next_prio=%d", REC->pname, REC->prev_tid, REC->pprio, hm_trace_tcb_state2str(REC->pstate), REC->nname, REC->next_tid, REC->nprio`
	printFmtSchedSwitch   = `"prev_comm=%s prev_pid=%d prev_prio=%d prev_state=%s%s ==> next_comm=%s next_pid=%d next_prio=%d expeller_type=%u", REC->prev_comm, REC->prev_pid, REC->prev_prio, (REC->prev_state & ((((0x0000 | 0x0001 | 0x0002 | 0x0004 | 0x0008 | 0x0010 | 0x0020 | 0x0040) + 1) << 1) - 1)) ? __print_flags(REC->prev_state & ((((0x0000 | 0x0001 | 0x0002 | 0x0004 | 0x0008 | 0x0010 | 0x0020 | 0x0040) + 1) << 1) - 1), "|", { 0x0001, "S" }, { 0x0002, "D" }, { 0x0004, "T" }, { 0x0008, "t" }, { 0x0010, "X" }, { 0x0020, "Z" }, { 0x0040, "P" }, { 0x0080, "I" }) : "R", REC->prev_state & (((0x0000 | 0x0001 | 0x0002 | 0x0004 | 0x0008 | 0x0010 | 0x0020 | 0x0040) + 1) << 1) ? "+" : "", REC->next_comm, REC->next_pid, REC->next_prio, REC->expeller_type`

	printFmtSchedBlockedReasonHM = `"pid=%d iowait=%d caller=%s delay=%llu", REC->pid, REC->iowait, hmtrace_sched_blocked_reason_of(REC->cnode_idx, REC->caller), REC->delay >> 10`
	printFmtSchedBlockedReason   = `"pid=%d iowait=%d caller=%pS delay=%lu", REC->pid, REC->io_wait, REC->caller, REC->delay>>10`

	// cpu_idle shares these same two literal print_fmt strings
	// byte-for-byte (kernel frequency/idle tracepoints both print
	// just a state and a cpu_id), so it dispatches through these
	// same two entries rather than keys of its own — a duplicate
	// key in formatterTable's map literal is a compile error, not
	// the silent last-write-wins a Python dict would give it.
	printFmtCPUFrequencyHM = `"state=%u cpu_id=%u", REC->state, REC->cpu_id`
	printFmtCPUFrequency   = `"state=%lu cpu_id=%lu", (unsigned long)REC->state, (unsigned long)REC->cpu_id`

	printFmtClockSetRateHM = `"%s state=%lu cpu_id=%lu", ((char *)((void *)((char *)REC + (REC->__data_loc_name & 0xffff)))), (unsigned long)REC->state, (unsigned long)REC->cpu_id`
	printFmtClockSetRate   = `"%s state=%lu cpu_id=%lu", __get_str(name), (unsigned long)REC->state, (unsigned long)REC->cpu_id`

	printFmtCPUFrequencyLimitsHM = `"min=%lu max=%lu cpu_id=%lu", (unsigned long)REC->min, (unsigned long)REC->max, (unsigned long)REC->cpu_id`
	printFmtCPUFrequencyLimits   = `"min=%lu max=%lu cpu_id=%lu", (unsigned long)REC->min_freq, (unsigned long)REC->max_freq, (unsigned long)REC->cpu_id`

	printFmtExt4DaWriteBegin = `"dev %d,%d ino %lu pos %lld len %u flags %u", ((unsigned int) ((REC->dev) >> 20)), ((unsigned int) ((REC->dev) & ((1U << 20) - 1))), (unsigned long) REC->ino, REC->pos, REC->len, REC->flags`
	printFmtExt4DaWriteEnd   = `"dev %d,%d ino %lu pos %lld len %u copied %u", ((unsigned int) ((REC->dev) >> 20)), ((unsigned int) ((REC->dev) & ((1U << 20) - 1))), (unsigned long) REC->ino, REC->pos, REC->len, REC->copied`

	printFmtExt4SyncFileEnter = `"dev %d,%d ino %lu parent %lu datasync %d ", ((unsigned int) ((REC->dev) >> 20)), ((unsigned int) ((REC->dev) & ((1U << 20) - 1))), (unsigned long) REC->ino, (unsigned long) REC->parent, REC->datasync`
	printFmtExt4SyncFileExit  = `"dev %d,%d ino %lu ret %d", ((unsigned int) ((REC->dev) >> 20)), ((unsigned int) ((REC->dev) & ((1U << 20) - 1))), (unsigned long) REC->ino, REC->ret`

	printFmtBlockBioRemap = `"%d,%d %s %llu + %u <- (%d,%d) %llu", ((unsigned int) ((REC->dev) >> 20)), ((unsigned int) ((REC->dev) & ((1U << 20) - 1))), REC->rwbs, (unsigned long long)REC->sector, REC->nr_sector, ((unsigned int) ((REC->old_dev) >> 20)), ((unsigned int) ((REC->old_dev) & ((1U << 20) - 1))), (unsigned long long)REC->old_sector`

	printFmtBlockRqIssueHM       = `"%d,%d %s %u (%s) %llu + %u [%s]", ((unsigned int) ((REC->dev) >> 20U)), ((unsigned int) ((REC->dev) & ((1U << 20U) - 1U))), REC->rwbs, REC->bytes, REC->cmd, (unsigned long long)REC->sector, REC->nr_sector, REC->comm`
	printFmtBlockRqIssueOrInsert = `"%d,%d %s %u (%s) %llu + %u [%s]", ((unsigned int) ((REC->dev) >> 20)), ((unsigned int) ((REC->dev) & ((1U << 20) - 1))), REC->rwbs, REC->bytes, __get_str(cmd), (unsigned long long)REC->sector, REC->nr_sector, REC->comm`

	printFmtBlockRqCompleteHM = `"%d,%d %s (%s) %llu + %u [%d]", ((unsigned int) ((REC->dev) >> 20U)), ((unsigned int) ((REC->dev) & ((1U << 20U) - 1U))), REC->rwbs, REC->cmd, (unsigned long long)REC->sector, REC->nr_sector, REC->error`
	printFmtBlockRqComplete   = `"%d,%d %s (%s) %llu + %u [%d]", ((unsigned int) ((REC->dev) >> 20)), ((unsigned int) ((REC->dev) & ((1U << 20) - 1))), REC->rwbs, __get_str(cmd), (unsigned long long)REC->sector, REC->nr_sector, REC->error`

	printFmtUfshcdCommandHM = `"%s: %s: tag: %u, DB: 0x%x, size: %d, IS: %u, LBA: %llu, opcode: 0x%x", REC->str, REC->dev_name, REC->tag, REC->doorbell, REC->transfer_len, REC->intr, REC->lba, (uint32_t)REC->opcode`
	printFmtUfshcdCommand   = `"%s: %s: tag: %u, DB: 0x%x, size: %d, IS: %u, LBA: %llu, opcode: 0x%x (%s), group_id: 0x%x", __get_str(str), __get_str(dev_name), REC->tag, REC->doorbell, REC->transfer_len, REC->intr, REC->lba, (u32)REC->opcode, __print_symbolic(REC->opcode, { 0x8a, "WRITE_16" }, { 0x2a, "WRITE_10" }, { 0x88, "READ_16" }, { 0x28, "READ_10" }, { 0x35, "SYNC" }, { 0x42, "UNMAP" }), (u32)REC->group_id`

	printFmtUfshcdUpiu       = `"%s: %s: HDR:%s, CDB:%s", __get_str(str), __get_str(dev_name), __print_hex(REC->hdr, sizeof(REC->hdr)), __print_hex(REC->tsf, sizeof(REC->tsf))`
	printFmtUfshcdUicCommand = `"%s: %s: cmd: 0x%x, arg1: 0x%x, arg2: 0x%x, arg3: 0x%x", __get_str(str), __get_str(dev_name), REC->cmd, REC->arg1, REC->arg2, REC->arg3`

	printFmtUfshcdFuncs          = `"%s: took %lld usecs, dev_state: %s, link_state: %s, err %d", __get_str(dev_name), REC->usecs, __print_symbolic(REC->dev_state, { 1, "UFS_ACTIVE_PWR_MODE" }, { 2, "UFS_SLEEP_PWR_MODE" }, { 3, "UFS_POWERDOWN_PWR_MODE" }), __print_symbolic(REC->link_state, { 0, "UIC_LINK_OFF_STATE" }, { 1, "UIC_LINK_ACTIVE_STATE" }, { 2, "UIC_LINK_HIBERN8_STATE" }), REC->err`
	printFmtUfshcdProfileFuncs   = `"%s: %s: took %lld usecs, err %d", __get_str(dev_name), __get_str(profile_info), REC->time_us, REC->err`
	printFmtUfshcdAutoBkopsState = `"%s: auto bkops - %s", __get_str(dev_name), __get_str(state)`
	printFmtUfshcdClkScaling     = `"%s: %s %s from %u to %u Hz", __get_str(dev_name), __get_str(state), __get_str(clk), REC->prev_state, REC->curr_state`
	printFmtUfshcdClkGating      = `"%s: gating state changed to %s", __get_str(dev_name), __print_symbolic(REC->state, { 0, "CLKS_OFF" }, { 1, "CLKS_ON" }, { 2, "REQ_CLKS_OFF" }, { 3, "REQ_CLKS_ON" })`

	printFmtI2CRead         = `"i2c-%d #%u a=%03x f=%04x l=%u", REC->adapter_nr, REC->msg_nr, REC->addr, REC->flags, REC->len`
	printFmtI2CWriteOrReply = `"i2c-%d #%u a=%03x f=%04x l=%u [%*phD]", REC->adapter_nr, REC->msg_nr, REC->addr, REC->flags, REC->len, REC->len, __get_dynamic_array(buf)`
	printFmtI2CResult       = `"i2c-%d n=%u ret=%d", REC->adapter_nr, REC->nr_msgs, REC->ret`

	printFmtSmbusRead         = `"i2c-%d a=%03x f=%04x c=%x %s", REC->adapter_nr, REC->addr, REC->flags, REC->command, __print_symbolic(REC->protocol, { 0, "QUICK" }, { 1, "BYTE" }, { 2, "BYTE_DATA" }, { 3, "WORD_DATA" }, { 4, "PROC_CALL" }, { 5, "BLOCK_DATA" }, { 6, "I2C_BLOCK_BROKEN" }, { 7, "BLOCK_PROC_CALL" }, { 8, "I2C_BLOCK_DATA" })`
	printFmtSmbusWriteOrReply = `"i2c-%d a=%03x f=%04x c=%x %s l=%u [%*phD]", REC->adapter_nr, REC->addr, REC->flags, REC->command, __print_symbolic(REC->protocol, { 0, "QUICK" }, { 1, "BYTE" }, { 2, "BYTE_DATA" }, { 3, "WORD_DATA" }, { 4, "PROC_CALL" }, { 5, "BLOCK_DATA" }, { 6, "I2C_BLOCK_BROKEN" }, { 7, "BLOCK_PROC_CALL" }, { 8, "I2C_BLOCK_DATA" }), REC->len, REC->len, REC->buf`
	printFmtSmbusResult       = `"i2c-%d a=%03x f=%04x c=%x %s %s res=%d", REC->adapter_nr, REC->addr, REC->flags, REC->command, __print_symbolic(REC->protocol, { 0, "QUICK" }, { 1, "BYTE" }, { 2, "BYTE_DATA" }, { 3, "WORD_DATA" }, { 4, "PROC_CALL" }, { 5, "BLOCK_DATA" }, { 6, "I2C_BLOCK_BROKEN" }, { 7, "BLOCK_PROC_CALL" }, { 8, "I2C_BLOCK_DATA" }), REC->read_write == 0 ? "wr" : "rd", REC->res`

	printFmtRegulatorSetVoltageComplete = `"name=%s, val=%u", __get_str(name), (int)REC->val`
	printFmtRegulatorSetVoltage         = `"name=%s (%d-%d)", __get_str(name), (int)REC->min, (int)REC->max`
	printFmtRegulatorFuncs              = `"name=%s", __get_str(name)`

	printFmtDmaFenceFuncs = `"driver=%s timeline=%s context=%u seqno=%u", __get_str(driver), __get_str(timeline), REC->context, REC->seqno`

	printFmtBinderTransaction         = `"transaction=%d dest_node=%d dest_proc=%d dest_thread=%d reply=%d flags=0x%x code=0x%x", REC->debug_id, REC->target_node, REC->to_proc, REC->to_thread, REC->reply, REC->flags, REC->code`
	printFmtBinderTransactionReceived = `"transaction=%d", REC->debug_id`

	printFmtMmcRequestStart = `"%s: start struct mmc_request[%p]: cmd_opcode=%u cmd_arg=0x%x cmd_flags=0x%x cmd_retries=%u stop_opcode=%u stop_arg=0x%x stop_flags=0x%x stop_retries=%u sbc_opcode=%u sbc_arg=0x%x sbc_flags=0x%x sbc_retires=%u blocks=%u block_size=%u blk_addr=%u data_flags=0x%x tag=%d can_retune=%u doing_retune=%u retune_now=%u need_retune=%d hold_retune=%d retune_period=%u", __get_str(name), REC->mrq, REC->cmd_opcode, REC->cmd_arg, REC->cmd_flags, REC->cmd_retries, REC->stop_opcode, REC->stop_arg, REC->stop_flags, REC->stop_retries, REC->sbc_opcode, REC->sbc_arg, REC->sbc_flags, REC->sbc_retries, REC->blocks, REC->blksz, REC->blk_addr, REC->data_flags, REC->tag, REC->can_retune, REC->doing_retune, REC->retune_now, REC->need_retune, REC->hold_retune, REC->retune_period`
	printFmtMmcRequestDone  = `"%s: end struct mmc_request[%p]: cmd_opcode=%u cmd_err=%d cmd_resp=0x%x 0x%x 0x%x 0x%x cmd_retries=%u stop_opcode=%u stop_err=%d stop_resp=0x%x 0x%x 0x%x 0x%x stop_retries=%u sbc_opcode=%u sbc_err=%d sbc_resp=0x%x 0x%x 0x%x 0x%x sbc_retries=%u bytes_xfered=%u data_err=%d tag=%d can_retune=%u doing_retune=%u retune_now=%u need_retune=%d hold_retune=%d retune_period=%u", __get_str(name), REC->mrq, REC->cmd_opcode, REC->cmd_err, REC->cmd_resp[0], REC->cmd_resp[1], REC->cmd_resp[2], REC->cmd_resp[3], REC->cmd_retries, REC->stop_opcode, REC->stop_err, REC->stop_resp[0], REC->stop_resp[1], REC->stop_resp[2], REC->stop_resp[3], REC->stop_retries, REC->sbc_opcode, REC->sbc_err, REC->sbc_resp[0], REC->sbc_resp[1], REC->sbc_resp[2], REC->sbc_resp[3], REC->sbc_retries, REC->bytes_xfered, REC->data_err, REC->tag, REC->can_retune, REC->doing_retune, REC->retune_now, REC->need_retune, REC->hold_retune, REC->retune_period`

	printFmtFileCheckAndAdvanceWbErr      = `"file=%p dev=%d:%d ino=0x%lx old=0x%x new=0x%x", REC->file, ((unsigned int)((REC->s_dev) >> 20)), ((unsigned int)((REC->s_dev) & ((1U << 20) - 1))), REC->i_ino, REC->old, REC->new`
	printFmtFilemapSetWbErr               = `"dev=%d:%d ino=0x%lx errseq=0x%x", ((unsigned int)((REC->s_dev) >> 20)), ((unsigned int)((REC->s_dev) & ((1U << 20) - 1))), REC->i_ino, REC->errseq`
	printFmtMmFilemapAddOrDeletePageCache = `"dev %d:%d ino %lx page=%px pfn=%lu ofs=%lu", ((unsigned int)((REC->s_dev) >> 20)), ((unsigned int)((REC->s_dev) & ((1U << 20) - 1))), REC->i_ino, REC->pg, REC->pfn, REC->index << 12`

	printFmtRssStatHM = `"mm_id=%u curr=%d member=%d size=%ldB", REC->mm_id, REC->curr, REC->member, REC->size`

	printFmtWorkqueueExecuteStartOrEnd = `"work struct %p: function %ps", REC->work, REC->function`

	printFmtThermalPowerAllocatorPID = `"thermal_zone_id=%d err=%d err_integral=%d p=%lld i=%lld d=%lld output=%d", REC->tz_id, REC->err, REC->err_integral, REC->p, REC->i, REC->d, REC->output`
	printFmtThermalPowerAllocator    = `"thermal_zone_id=%d req_power={%s} total_req_power=%u granted_power={%s} total_granted_power=%u power_range=%u max_allocatable_power=%u current_temperature=%d delta_temperature=%d", REC->tz_id, __print_array(__get_dynamic_array(req_power), REC->num_actors, 4), REC->total_req_power, __print_array(__get_dynamic_array(granted_power), REC->num_actors, 4), REC->total_granted_power, REC->power_range, REC->max_allocatable_power, REC->current_temp, REC->delta_temp`

	printFmtPrint            = `"%ps: %s", (void *)REC->ip, REC->buf`
	printFmtTracingMarkWrite = `"%s", ((void *)((char *)REC + (REC->__data_loc_buffer & 0xffff)))`
)

var formatterTable = map[string]formatter{
	printFmtSchedWakeupHM: formatSchedWakeupHM,
	printFmtSchedWakeup:   formatSchedWakeup,

	printFmtSchedSwitchHM: formatSchedSwitchHM,
	printFmtSchedSwitch:   formatSchedSwitch,

	printFmtSchedBlockedReasonHM: formatSchedBlockedReasonHM,
	printFmtSchedBlockedReason:   formatSchedBlockedReason,

	printFmtCPUFrequencyHM: formatCPUFrequency,
	printFmtCPUFrequency:   formatCPUFrequency,

	printFmtClockSetRateHM: formatClockSetRate,
	printFmtClockSetRate:   formatClockSetRate,

	printFmtCPUFrequencyLimitsHM: formatCPUFrequencyLimitsHM,
	printFmtCPUFrequencyLimits:   formatCPUFrequencyLimits,

	printFmtExt4DaWriteBegin: formatExt4DaWriteBegin,
	printFmtExt4DaWriteEnd:   formatExt4DaWriteEnd,

	printFmtExt4SyncFileEnter: formatExt4SyncFileEnter,
	printFmtExt4SyncFileExit:  formatExt4SyncFileExit,

	printFmtBlockBioRemap: formatBlockBioRemap,

	printFmtBlockRqIssueHM:       formatBlockRqIssueHM,
	printFmtBlockRqIssueOrInsert: formatBlockRqIssueOrInsert,

	printFmtBlockRqCompleteHM: formatBlockRqCompleteHM,
	printFmtBlockRqComplete:   formatBlockRqComplete,

	printFmtUfshcdCommandHM: formatUfshcdCommandHM,
	printFmtUfshcdCommand:   formatUfshcdCommand,

	printFmtUfshcdUpiu:       formatUfshcdUpiu,
	printFmtUfshcdUicCommand: formatUfshcdUicCommand,

	printFmtUfshcdFuncs:          formatUfshcdFuncs,
	printFmtUfshcdProfileFuncs:   formatUfshcdProfileFuncs,
	printFmtUfshcdAutoBkopsState: formatUfshcdAutoBkopsState,
	printFmtUfshcdClkScaling:     formatUfshcdClkScaling,
	printFmtUfshcdClkGating:      formatUfshcdClkGating,

	printFmtI2CRead:         formatI2CRead,
	printFmtI2CWriteOrReply: formatI2CWriteOrReply,
	printFmtI2CResult:       formatI2CResult,

	printFmtSmbusRead:         formatSmbusRead,
	printFmtSmbusWriteOrReply: formatSmbusWriteOrReply,
	printFmtSmbusResult:       formatSmbusResult,

	printFmtRegulatorSetVoltageComplete: formatRegulatorSetVoltageComplete,
	printFmtRegulatorSetVoltage:         formatRegulatorSetVoltage,
	printFmtRegulatorFuncs:              formatRegulatorFuncs,

	printFmtDmaFenceFuncs: formatDmaFenceFuncs,

	printFmtBinderTransaction:         formatBinderTransaction,
	printFmtBinderTransactionReceived: formatBinderTransactionReceived,

	printFmtMmcRequestStart: formatMmcRequestStart,
	printFmtMmcRequestDone:  formatMmcRequestDone,

	printFmtFileCheckAndAdvanceWbErr:      formatFileCheckAndAdvanceWbErr,
	printFmtFilemapSetWbErr:               formatFilemapSetWbErr,
	printFmtMmFilemapAddOrDeletePageCache: formatMmFilemapAddOrDeletePageCache,

	printFmtRssStatHM: formatRssStat,

	printFmtWorkqueueExecuteStartOrEnd: formatWorkqueueExecuteStartOrEnd,

	printFmtThermalPowerAllocatorPID: formatThermalPowerAllocatorPID,
	printFmtThermalPowerAllocator:    formatThermalPowerAllocator,

	printFmtPrint:            formatPrint,
	printFmtTracingMarkWrite: formatTracingMarkWrite,
}

func formatSchedWakeupHM(payload []byte, fv fieldView) string {
	return fmt.Sprintf("comm=%s pid=%d prio=%d target_cpu=%03d",
		fv.str("pname[16]"), fv.intf("pid", true), fv.intf("prio", true), fv.intf("target_cpu", true))
}

func formatSchedWakeup(payload []byte, fv fieldView) string {
	return fmt.Sprintf("comm=%s pid=%d prio=%d target_cpu=%03d",
		fv.str("comm[16]"), fv.intf("pid", true), fv.intf("prio", true), fv.intf("target_cpu", true))
}

var schedSwitchHMStateNames = map[int64]string{0x0: "R", 0x1: "S", 0x2: "D", 0x10: "X", 0x100: "R+"}

func formatSchedSwitchHM(payload []byte, fv fieldView) string {
	pstate := fv.intf("pstate", true)
	name, ok := schedSwitchHMStateNames[pstate]
	if !ok {
		name = "?"
	}
	return fmt.Sprintf("prev_comm=%s prev_pid=%d prev_prio=%d prev_state=%s ==> next_comm=%s next_pid=%d next_prio=%d",
		fv.str("pname[16]"), fv.intf("prev_tid", true), fv.intf("pprio", true), name,
		fv.str("nname[16]"), fv.intf("next_tid", true), fv.intf("nprio", true))
}

var schedSwitchStateNames = map[int64]string{0x1: "S", 0x2: "D", 0x4: "T", 0x8: "t", 0x10: "X", 0x20: "Z", 0x40: "P", 0x80: "I"}

func formatSchedSwitch(payload []byte, fv fieldView) string {
	prevState := fv.intf("prev_state", true)
	name, ok := schedSwitchStateNames[prevState&0xff]
	if !ok {
		name = "R"
	}
	if prevState&0x100 != 0 {
		name += "+"
	}
	return fmt.Sprintf("prev_comm=%s prev_pid=%d prev_prio=%d prev_state=%s ==> next_comm=%s next_pid=%d next_prio=%d expeller_type=%d",
		fv.str("prev_comm[16]"), fv.intf("prev_pid", true), fv.intf("prev_prio", true), name,
		fv.str("next_comm[16]"), fv.intf("next_pid", true), fv.intf("next_prio", true), fv.intf("expeller_type", false))
}

func formatSchedBlockedReasonHM(payload []byte, fv fieldView) string {
	return fmt.Sprintf("pid=%d iowait=%d caller=0x%x cnode_idx=%d delay=%d",
		fv.intf("pid", true), fv.intf("iowait", false), fv.intf("caller", false),
		fv.intf("cnode_idx", false), fv.intf("delay", false)>>10)
}

func formatSchedBlockedReason(payload []byte, fv fieldView) string {
	return fmt.Sprintf("pid=%d iowait=%d caller=0x%x delay=%d",
		fv.intf("pid", true), fv.intf("io_wait", false), fv.intf("caller", false), fv.intf("delay", false)>>10)
}

func formatCPUFrequency(payload []byte, fv fieldView) string {
	return fmt.Sprintf("state=%d cpu_id=%d", fv.intf("state", false), fv.intf("cpu_id", false))
}

func formatClockSetRate(payload []byte, fv fieldView) string {
	return fmt.Sprintf("%s state=%d cpu_id=%d", fv.dynStr("name"), fv.intf("state", false), fv.intf("cpu_id", false))
}

func formatCPUFrequencyLimitsHM(payload []byte, fv fieldView) string {
	return fmt.Sprintf("min=%d max=%d cpu_id=%d", fv.intf("min", false), fv.intf("max", false), fv.intf("cpu_id", false))
}

func formatCPUFrequencyLimits(payload []byte, fv fieldView) string {
	return fmt.Sprintf("min=%d max=%d cpu_id=%d", fv.intf("min_freq", false), fv.intf("max_freq", false), fv.intf("cpu_id", false))
}

func formatExt4DaWriteBegin(payload []byte, fv fieldView) string {
	dev := fv.intf("dev", false)
	return fmt.Sprintf("dev %d,%d ino %d pos %d len %d flags %d",
		dev>>20, dev&0xfffff, fv.intf("ino", false), fv.intf("pos", true), fv.intf("len", false), fv.intf("flags", false))
}

func formatExt4DaWriteEnd(payload []byte, fv fieldView) string {
	dev := fv.intf("dev", false)
	return fmt.Sprintf("dev %d,%d ino %d pos %d len %d copied %d",
		dev>>20, dev&0xfffff, fv.intf("ino", false), fv.intf("pos", true), fv.intf("len", false), fv.intf("copied", false))
}

func formatExt4SyncFileEnter(payload []byte, fv fieldView) string {
	dev := fv.intf("dev", false)
	return fmt.Sprintf("dev %d,%d ino %d parent %d datasync %d ",
		dev>>20, dev&0xfffff, fv.intf("ino", false), fv.intf("parent", false), fv.intf("datasync", true))
}

func formatExt4SyncFileExit(payload []byte, fv fieldView) string {
	dev := fv.intf("dev", false)
	return fmt.Sprintf("dev %d,%d ino %d ret %d", dev>>20, dev&0xfffff, fv.intf("ino", false), fv.intf("ret", true))
}

func formatBlockBioRemap(payload []byte, fv fieldView) string {
	dev := fv.intf("dev", false)
	oldDev := fv.intf("old_dev", false)
	return fmt.Sprintf("%d,%d %s %d + %d <- (%d,%d) %d",
		dev>>20, dev&0xfffff, fv.str("rwbs[8]"), fv.intf("sector", false), fv.intf("nr_sector", false),
		oldDev>>20, oldDev&0xfffff, fv.intf("old_sector", false))
}

func formatBlockRqIssueHM(payload []byte, fv fieldView) string {
	dev := fv.intf("dev", false)
	return fmt.Sprintf("%d,%d %s %d (%s) %d + %d [%s]",
		dev>>20, dev&0xfffff, fv.str("rwbs[8]"), fv.intf("bytes", false), fv.str("cmd[16]"),
		fv.intf("sector", false), fv.intf("nr_sector", false), fv.str("comm[16]"))
}

func formatBlockRqIssueOrInsert(payload []byte, fv fieldView) string {
	dev := fv.intf("dev", false)
	return fmt.Sprintf("%d,%d %s %d (%s) %d + %d [%s]",
		dev>>20, dev&0xfffff, fv.str("rwbs[8]"), fv.intf("bytes", false), fv.dynStr("cmd"),
		fv.intf("sector", false), fv.intf("nr_sector", false), fv.str("comm[16]"))
}

func formatBlockRqCompleteHM(payload []byte, fv fieldView) string {
	dev := fv.intf("dev", false)
	return fmt.Sprintf("%d,%d %s (%s) %d + %d [%d]",
		dev>>20, dev&0xfffff, fv.str("rwbs[8]"), fv.str("cmd[16]"),
		fv.intf("sector", false), fv.intf("nr_sector", false), fv.intf("error", true))
}

func formatBlockRqComplete(payload []byte, fv fieldView) string {
	dev := fv.intf("dev", false)
	return fmt.Sprintf("%d,%d %s (%s) %d + %d [%d]",
		dev>>20, dev&0xfffff, fv.str("rwbs[8]"), fv.dynStr("cmd"),
		fv.intf("sector", false), fv.intf("nr_sector", false), fv.intf("error", true))
}

func formatUfshcdCommandHM(payload []byte, fv fieldView) string {
	return fmt.Sprintf("%s: %s: tag: %d, DB: 0x%x, size: %d, IS: %d, LBA: %d, opcode: 0x%x",
		fv.str("str[16]"), fv.str("dev_name[16]"), fv.intf("tag", false), fv.intf("doorbell", false),
		fv.intf("transfer_len", true), fv.intf("intr", false), fv.intf("lba", false), fv.intf("opcode", false))
}

var ufshcdOpcodeNames = map[int64]string{0x8a: "WRITE_16", 0x2a: "WRITE_10", 0x88: "READ_16", 0x28: "READ_10", 0x35: "SYNC", 0x42: "UNMAP"}

func formatUfshcdCommand(payload []byte, fv fieldView) string {
	opcode := fv.intf("opcode", false)
	return fmt.Sprintf("%s: %s: tag: %d, DB: 0x%x, size: %d, IS: %d, LBA: %d, opcode: 0x%x (%s), group_id: 0x%x",
		fv.dynStr("str"), fv.dynStr("dev_name"), fv.intf("tag", false), fv.intf("doorbell", false),
		fv.intf("transfer_len", true), fv.intf("intr", false), fv.intf("lba", false), opcode,
		ufshcdOpcodeNames[opcode], fv.intf("group_id", false))
}

func formatUfshcdUpiu(payload []byte, fv fieldView) string {
	return fmt.Sprintf("%s: %s: HDR:0x%s, CDB:0x%s",
		fv.dynStr("str"), fv.dynStr("dev_name"), fv.bigHex("hdr[12]"), fv.bigHex("tsf[16]"))
}

func formatUfshcdUicCommand(payload []byte, fv fieldView) string {
	return fmt.Sprintf("%s: %s: cmd: 0x%x, arg1: 0x%x, arg2: 0x%x, arg3: 0x%x",
		fv.dynStr("str"), fv.dynStr("dev_name"), fv.intf("cmd", false), fv.intf("arg1", false),
		fv.intf("arg2", false), fv.intf("arg3", false))
}

var ufshcdDevStateNames = map[int64]string{1: "UFS_ACTIVE_PWR_MODE", 2: "UFS_SLEEP_PWR_MODE", 3: "UFS_POWERDOWN_PWR_MODE"}
var ufshcdLinkStateNames = map[int64]string{0: "UIC_LINK_OFF_STATE", 1: "UIC_LINK_ACTIVE_STATE", 2: "UIC_LINK_HIBERN8_STATE"}

func formatUfshcdFuncs(payload []byte, fv fieldView) string {
	return fmt.Sprintf("%s: took %d usecs, dev_state: %s, link_state: %s, err %d",
		fv.dynStr("dev_name"), fv.intf("usecs", true), ufshcdDevStateNames[fv.intf("dev_state", true)],
		ufshcdLinkStateNames[fv.intf("link_state", true)], fv.intf("err", true))
}

func formatUfshcdProfileFuncs(payload []byte, fv fieldView) string {
	return fmt.Sprintf("%s: %s: took %d usecs, err %d",
		fv.dynStr("dev_name"), fv.dynStr("profile_info"), fv.intf("time_us", true), fv.intf("err", true))
}

func formatUfshcdAutoBkopsState(payload []byte, fv fieldView) string {
	return fmt.Sprintf("%s: auto bkops - %s", fv.dynStr("dev_name"), fv.dynStr("state"))
}

func formatUfshcdClkScaling(payload []byte, fv fieldView) string {
	return fmt.Sprintf("%s: %s %s from %d to %d Hz",
		fv.dynStr("dev_name"), fv.dynStr("state"), fv.dynStr("clk"), fv.intf("prev_state", false), fv.intf("curr_state", false))
}

var ufshcdClkGatingStateNames = map[int64]string{0: "CLKS_OFF", 1: "CLKS_ON", 2: "REQ_CLKS_OFF", 3: "REQ_CLKS_ON"}

func formatUfshcdClkGating(payload []byte, fv fieldView) string {
	return fmt.Sprintf("%s: gating state changed to %s", fv.dynStr("dev_name"), ufshcdClkGatingStateNames[fv.intf("state", true)])
}

func formatI2CRead(payload []byte, fv fieldView) string {
	return fmt.Sprintf("i2c-%d #%d a=%03x f=%04x l=%d",
		fv.intf("adapter_nr", true), fv.intf("msg_nr", false), fv.intf("addr", false), fv.intf("flags", false), fv.intf("len", false))
}

func formatI2CWriteOrReply(payload []byte, fv fieldView) string {
	lenWrite := fv.intf("len", false)
	bufPos := fv.intf("buf", false) & 0xffff
	digits := ""
	if int(bufPos) < len(payload) {
		digits = strOf(payload[bufPos:])
	}
	val, _ := strconv.ParseInt(digits, 10, 64)
	prefix := fmt.Sprintf("i2c-%d #%d a=%03x f=%04x l=%d ",
		fv.intf("adapter_nr", true), fv.intf("msg_nr", false), fv.intf("addr", false), fv.intf("flags", false), lenWrite)
	return prefix + rightJustify(fmt.Sprintf("%d", val), int(lenWrite))
}

func formatI2CResult(payload []byte, fv fieldView) string {
	return fmt.Sprintf("i2c-%d n=%d ret=%d", fv.intf("adapter_nr", true), fv.intf("nr_msgs", false), fv.intf("ret", true))
}

var smbusProtocolNames = map[int64]string{0: "QUICK", 1: "BYTE", 2: "BYTE_DATA", 3: "WORD_DATA", 4: "PROC_CALL", 5: "BLOCK_DATA", 6: "I2C_BLOCK_BROKEN", 7: "BLOCK_PROC_CALL", 8: "I2C_BLOCK_DATA"}

func formatSmbusRead(payload []byte, fv fieldView) string {
	return fmt.Sprintf("i2c-%d a=%03x f=%04x c=%x %s",
		fv.intf("adapter_nr", true), fv.intf("addr", false), fv.intf("flags", false), fv.intf("command", false),
		smbusProtocolNames[fv.intf("protocol", false)])
}

func formatSmbusWriteOrReply(payload []byte, fv fieldView) string {
	lenWrite := fv.intf("len", false)
	buf := fv.str("buf[32 + 2]")
	val, _ := strconv.ParseInt(buf, 10, 64)
	prefix := fmt.Sprintf("i2c-%d a=%03x f=%04x c=%x %s l=%d",
		fv.intf("adapter_nr", true), fv.intf("addr", false), fv.intf("flags", false), fv.intf("command", false),
		smbusProtocolNames[fv.intf("protocol", false)], lenWrite)
	return prefix + rightJustify(fmt.Sprintf("%d", val), int(lenWrite))
}

func formatSmbusResult(payload []byte, fv fieldView) string {
	rw := "rd"
	if fv.intf("read_write", false) == 0 {
		rw = "wr"
	}
	return fmt.Sprintf("i2c-%d a=%03x f=%04x c=%x %s %s res=%d",
		fv.intf("adapter_nr", true), fv.intf("addr", false), fv.intf("flags", false), fv.intf("command", false),
		smbusProtocolNames[fv.intf("protocol", false)], rw, fv.intf("res", true))
}

func formatRegulatorSetVoltageComplete(payload []byte, fv fieldView) string {
	return fmt.Sprintf("name=%s, val=%d", fv.dynStr("name"), fv.intf("val", false))
}

func formatRegulatorSetVoltage(payload []byte, fv fieldView) string {
	return fmt.Sprintf("name=%s (%d-%d)", fv.dynStr("name"), fv.intf("min", true), fv.intf("max", true))
}

func formatRegulatorFuncs(payload []byte, fv fieldView) string {
	return fmt.Sprintf("name=%s", fv.dynStr("name"))
}

func formatDmaFenceFuncs(payload []byte, fv fieldView) string {
	return fmt.Sprintf("driver=%s timeline=%s context=%d seqno=%d",
		fv.dynStr("driver"), fv.dynStr("timeline"), fv.intf("context", false), fv.intf("seqno", false))
}

func formatBinderTransaction(payload []byte, fv fieldView) string {
	return fmt.Sprintf("transaction=%d dest_node=%d dest_proc=%d dest_thread=%d reply=%d flags=0x%x code=0x%x",
		fv.intf("debug_id", true), fv.intf("target_node", true), fv.intf("to_proc", true), fv.intf("to_thread", true),
		fv.intf("reply", true), fv.intf("flags", false), fv.intf("code", false))
}

func formatBinderTransactionReceived(payload []byte, fv fieldView) string {
	return fmt.Sprintf("transaction=%d", fv.intf("debug_id", true))
}

func formatMmcRequestStart(payload []byte, fv fieldView) string {
	return fmt.Sprintf("%s: start struct mmc_request[0x%x]: cmd_opcode=%d cmd_arg=0x%x cmd_flags=0x%x "+
		"cmd_retries=%d stop_opcode=%d stop_arg=0x%x stop_flags=0x%x stop_retries=%d sbc_opcode=%d "+
		"sbc_arg=0x%x sbc_flags=0x%x sbc_retires=%d blocks=%d block_size=%d blk_addr=%d data_flags=0x%x "+
		"tag=%d can_retune=%d doing_retune=%d retune_now=%d need_retune=%d hold_retune=%d retune_period=%d",
		fv.str("name"), fv.intf("mrq", false), fv.intf("cmd_opcode", false), fv.intf("cmd_arg", false),
		fv.intf("cmd_flags", false), fv.intf("cmd_retries", false), fv.intf("stop_opcode", false),
		fv.intf("stop_arg", false), fv.intf("stop_flags", false), fv.intf("stop_retries", false),
		fv.intf("sbc_opcode", false), fv.intf("sbc_arg", false), fv.intf("sbc_flags", false),
		fv.intf("sbc_retries", false), fv.intf("blocks", false), fv.intf("blksz", false), fv.intf("blk_addr", false),
		fv.intf("data_flags", false), fv.intf("tag", true), fv.intf("can_retune", false), fv.intf("doing_retune", false),
		fv.intf("retune_now", false), fv.intf("need_retune", false), fv.intf("hold_retune", true), fv.intf("retune_period", true))
}

func formatMmcRequestDone(payload []byte, fv fieldView) string {
	cmdResp := fv.bytes("cmd_resp")
	stopResp := fv.bytes("stop_resp")
	sbcResp := fv.bytes("sbc_resp")
	respByte := func(b []byte, i int) int64 {
		if i < len(b) {
			return int64(b[i])
		}
		return 0
	}
	return fmt.Sprintf("%s: end struct mmc_request[0x%x]: cmd_opcode=%d cmd_err=%d cmd_resp=0x%x 0x%x 0x%x 0x%x "+
		"cmd_retries=%d stop_opcode=%d stop_err=%d stop_resp=0x%x 0x%x 0x%x 0x%x stop_retries=%d sbc_opcode=%d "+
		"sbc_err=%d sbc_resp=0x%x 0x%x 0x%x 0x%x sbc_retries=%d bytes_xfered=%d data_err=%d tag=%d can_retune=%d "+
		"doing_retune=%d retune_now=%d need_retune=%d hold_retune=%d retune_period=%d",
		fv.str("name"), fv.intf("mrq", false), fv.intf("cmd_opcode", false), fv.intf("cmd_err", true),
		respByte(cmdResp, 0), respByte(cmdResp, 1), respByte(cmdResp, 2), respByte(cmdResp, 3),
		fv.intf("cmd_retries", false), fv.intf("stop_opcode", false), fv.intf("stop_err", true),
		respByte(stopResp, 0), respByte(stopResp, 1), respByte(stopResp, 2), respByte(stopResp, 3),
		fv.intf("stop_retries", false), fv.intf("sbc_opcode", false), fv.intf("sbc_err", true),
		respByte(sbcResp, 0), respByte(sbcResp, 1), respByte(sbcResp, 2), respByte(sbcResp, 3),
		fv.intf("sbc_retries", false), fv.intf("bytes_xfered", false), fv.intf("data_err", true), fv.intf("tag", true),
		fv.intf("can_retune", false), fv.intf("doing_retune", false), fv.intf("retune_now", false),
		fv.intf("need_retune", true), fv.intf("hold_retune", true), fv.intf("retune_period", false))
}

func formatFileCheckAndAdvanceWbErr(payload []byte, fv fieldView) string {
	sDev := fv.intf("s_dev", false)
	return fmt.Sprintf("file=0x%x dev=%d:%d ino=0x%x old=0x%x new=0x%x",
		fv.intf("file", false), sDev>>20, sDev&0xfffff, fv.intf("i_ino", false), fv.intf("old", false), fv.intf("new", false))
}

func formatFilemapSetWbErr(payload []byte, fv fieldView) string {
	sDev := fv.intf("s_dev", false)
	return fmt.Sprintf("dev=%d:%d ino=0x%x errseq=0x%x", sDev>>20, sDev&0xfffff, fv.intf("i_ino", false), fv.intf("errseq", false))
}

func formatMmFilemapAddOrDeletePageCache(payload []byte, fv fieldView) string {
	sDev := fv.intf("s_dev", false)
	return fmt.Sprintf("dev %d:%d ino 0x%x page=0x%x pfn=%d ofs=%d",
		sDev>>20, sDev&0xfffff, fv.intf("i_ino", false), fv.intf("pg", false), fv.intf("pfn", false), fv.intf("index", false)<<12)
}

func formatRssStat(payload []byte, fv fieldView) string {
	return fmt.Sprintf("mm_id=%d curr=%d member=%d size=%d",
		fv.intf("mm_id", false), fv.intf("curr", false), fv.intf("member", true), fv.intf("size", true))
}

func formatWorkqueueExecuteStartOrEnd(payload []byte, fv fieldView) string {
	return fmt.Sprintf("work struct 0x%x: function 0x%x", fv.intf("work", false), fv.intf("function", false))
}

func formatThermalPowerAllocatorPID(payload []byte, fv fieldView) string {
	return fmt.Sprintf("thermal_zone_id=%d err=%d err_integral=%d p=%d i=%d d=%d output=%d",
		fv.intf("tz_id", true), fv.intf("err", true), fv.intf("err_integral", true), fv.intf("p", true),
		fv.intf("i", true), fv.intf("d", true), fv.intf("output", true))
}

func formatThermalPowerAllocator(payload []byte, fv fieldView) string {
	numActors := int(fv.intf("num_actors", false))
	reqPos := int(fv.intf("req_power", false) & 0xffff)
	grantedPos := int(fv.intf("granted_power", false) & 0xffff)

	joinBytes := func(pos, n int) string {
		if pos < 0 || pos >= len(payload) {
			return "{}"
		}
		if pos+n > len(payload) {
			n = len(payload) - pos
		}
		parts := make([]string, 0, n)
		for _, b := range payload[pos : pos+n] {
			parts = append(parts, fmt.Sprintf("%d", b))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}

	return fmt.Sprintf("thermal_zone_id=%d req_power=%s total_req_power=%d granted_power=%s total_granted_power=%d "+
		"power_range=%d max_allocatable_power=%d current_temperature=%d delta_temperature=%d",
		fv.intf("tz_id", true), joinBytes(reqPos, numActors*4), fv.intf("total_req_power", false),
		joinBytes(grantedPos, numActors*4), fv.intf("total_granted_power", false), fv.intf("power_range", false),
		fv.intf("max_allocatable_power", false), fv.intf("current_temp", true), fv.intf("delta_temp", true))
}

func formatPrint(payload []byte, fv fieldView) string {
	const bufPos = 16
	ip := fv.intf("ip", false)
	tail := ""
	if bufPos < len(payload) {
		tail = strOf(payload[bufPos:])
	}
	return fmt.Sprintf("0x%x: %s", ip, tail)
}

// formatTracingMarkWrite implements the special-cased ATrace userspace
// marker rewriting described in §4.8: trailing "|" stripped from
// "E|...|" lines, and the last space before a trailing numeric/string
// argument turned into "|" for "S|"/"F|"/"C|" lines.
func formatTracingMarkWrite(payload []byte, fv fieldView) string {
	result := fv.dynStr("buffer")
	switch {
	case strings.HasPrefix(result, "E|") && strings.HasSuffix(result, "|"):
		result = result[:len(result)-1]
	case strings.HasPrefix(result, "S|") || strings.HasPrefix(result, "F|") || strings.HasPrefix(result, "C|"):
		if pos := strings.LastIndexByte(result, ' '); pos >= 0 {
			result = result[:pos] + "|" + result[pos+1:]
		}
	}
	return result
}

// bigHex renders a fixed-width byte field as a little-endian integer
// in hex, the way the original's parse_int_field(signed=False) did for
// oversized (>8 byte) fields used only for display.
func (fv fieldView) bigHex(name string) string {
	b := fv.byName[name]
	if len(b) == 0 {
		return "0"
	}
	rev := make([]byte, len(b))
	for i, v := range b {
		rev[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(rev).Text(16)
}
