// Package net 实现通联网次的核心业务逻辑
// 包含网次状态机（pending -> active -> closed）、参与电台与日志的变更逻辑，
// 以及每次变更后对持久化层的同步尽力写入
package net

import (
	"strings"
	"sync"
	"time"

	"netctl_server/internal/dao/storage"
	"netctl_server/internal/dto/request"
	"netctl_server/internal/dto/respond"
	"netctl_server/internal/export"
	"netctl_server/internal/model"
	"netctl_server/pkg/constants"
	"netctl_server/pkg/errorx"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// netService 网次业务逻辑实现
// 持有当前网次的全部内存状态；原实现运行在单一事件派发上下文中，
// 变更操作天然互斥，这里用显式互斥锁达到同样效果（HTTP 服务是并发的）
type netService struct {
	mu   sync.Mutex
	repo storage.BundleRepository // 持久化端口，可替换为内存实现（测试/降级）

	session      *model.NetSession       // 当前网次，nil 表示无
	participants []model.Participant     // 参与电台（按签到顺序）
	logEntries   []model.LogEntry        // 通联日志（按记录顺序）
	lastAckedId  string                  // 最近已确认日志条目 ID，空串表示无
	startTime    time.Time               // 计时起点，零值表示未计时；不持久化

	now   func() time.Time // 时钟，测试时可替换
	newId func() string    // ID 生成器，测试时可替换
}

// NewNetService 创建网次服务实例并尝试恢复上次的活动网次
func NewNetService(repo storage.BundleRepository) *netService {
	s := &netService{
		repo:  repo,
		now:   time.Now,
		newId: uuid.NewString,
	}
	s.restore()
	return s
}

// restore 按活动网次指针从存储恢复状态
// 任何失败（指针缺失、数据损坏）都静默降级为空状态
func (s *netService) restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	activeId, err := s.repo.ActiveSessionId()
	if err != nil {
		zap.L().Warn("读取活动网次指针失败", zap.Error(err))
		return
	}
	if activeId == "" {
		return
	}
	bundle, err := s.repo.Load(activeId)
	if err != nil {
		zap.L().Warn("恢复活动网次失败",
			zap.String("session_id", activeId),
			zap.Error(err),
		)
		return
	}
	s.installLocked(bundle)
}

// ==================== 网次生命周期 ====================

// CreateSession 创建网次
// 初始状态 pending；同时自动创建网控操作员作为 1 号参与电台（战术呼号 "NET"）
// 计时不启动：只有 Open 之后才开始计时
func (s *netService) CreateSession(req request.CreateSessionRequest) *respond.NetStateRespond {
	s.mu.Lock()
	defer s.mu.Unlock()

	nowT := s.now()
	session := &model.NetSession{
		Id:             s.newId(),
		Name:           strings.TrimSpace(req.Name),
		Frequency:      strings.TrimSpace(req.Frequency),
		NetControlOp:   normalizeCallsign(req.NetControlOp),
		NetControlName: strings.TrimSpace(req.NetControlName),
		PreparedBy:     strings.TrimSpace(req.PreparedBy),
		DateTime:       nowT,
		EndTime:        nil,
		Status:         model.StatusPending,
	}
	netControl := model.Participant{
		Id:            s.newId(),
		Callsign:      session.NetControlOp,
		TacticalCall:  constants.NetControlTactical,
		Name:          session.NetControlName,
		Location:      "",
		CheckInTime:   nowT,
		CheckInNumber: 1,
	}

	s.session = session
	s.participants = []model.Participant{netControl}
	s.logEntries = nil
	s.lastAckedId = ""
	s.startTime = time.Time{}

	s.persistLocked()
	return s.stateLocked()
}

// OpenSession 开始网次
// 仅 pending -> active 有效，其余状态下静默无操作；记录计时起点
func (s *netService) OpenSession() *respond.NetStateRespond {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil && s.session.Status == model.StatusPending {
		s.session.Status = model.StatusActive
		s.session.EndTime = nil
		s.startTime = s.now()
		s.persistLocked()
	}
	return s.stateLocked()
}

// CloseSession 结束网次
// 对任何非空网次有效；写入结束时刻并停止计时。closed 为终态，
// 重新开始需要 Reset 后新建网次
func (s *netService) CloseSession() *respond.NetStateRespond {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		endTime := s.now()
		s.session.Status = model.StatusClosed
		s.session.EndTime = &endTime
		s.startTime = time.Time{}
		s.persistLocked()
	}
	return s.stateLocked()
}

// LoadSession 按 ID 加载历史网次
// 网次不存在是整个系统唯一对用户可见的错误路径（CodeNotFound）
func (s *netService) LoadSession(sessionId string) (*respond.NetStateRespond, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bundle, err := s.repo.Load(sessionId)
	if err != nil {
		return nil, errorx.Newf(errorx.CodeNotFound, "网次不存在")
	}
	s.installLocked(bundle)

	// 活动网次指针指向新加载的网次（尽力而为）
	if err := s.repo.SetActiveSessionId(bundle.Session.Id); err != nil {
		zap.L().Warn("更新活动网次指针失败",
			zap.String("session_id", bundle.Session.Id),
			zap.Error(err),
		)
	}
	return s.stateLocked(), nil
}

// Reset 重置：删除当前网次的持久化数据并清空内存状态
func (s *netService) Reset() *respond.NetStateRespond {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		if err := s.repo.Delete(s.session.Id); err != nil {
			zap.L().Warn("删除网次数据包失败",
				zap.String("session_id", s.session.Id),
				zap.Error(err),
			)
		}
	}
	if err := s.repo.SetActiveSessionId(""); err != nil {
		zap.L().Warn("清除活动网次指针失败", zap.Error(err))
	}

	s.session = nil
	s.participants = nil
	s.logEntries = nil
	s.lastAckedId = ""
	s.startTime = time.Time{}
	return s.stateLocked()
}

// State 返回当前网次完整状态（只读快照）
func (s *netService) State() *respond.NetStateRespond {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// ElapsedTime 返回网次已进行时长
// active 状态下为 now - 计时起点，其余状态恒为 0；该值不持久化，
// 重载后 active 网次以 session.DateTime 重建计时起点
func (s *netService) ElapsedTime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.startTime.IsZero() {
		return 0
	}
	return s.now().Sub(s.startTime)
}

// ==================== 参与电台变更 ====================

// AddParticipant 电台签到
// 签到序号 = 当前电台数 + 1，分配后永不变化
// 网次处于 active 时自动追加一条 {from: 呼号, to: "NC", message: "check in"} 日志；
// pending/closed 状态下签到不产生日志
func (s *netService) AddParticipant(req request.AddParticipantRequest) *respond.NetStateRespond {
	s.mu.Lock()
	defer s.mu.Unlock()

	callsign := normalizeCallsign(req.Callsign)
	participant := model.Participant{
		Id:            s.newId(),
		Callsign:      callsign,
		TacticalCall:  strings.TrimSpace(req.TacticalCall),
		Name:          strings.TrimSpace(req.Name),
		Location:      strings.TrimSpace(req.Location),
		CheckInTime:   s.now(),
		CheckInNumber: len(s.participants) + 1,
	}
	s.participants = append(s.participants, participant)
	s.persistLocked()

	if s.session != nil && s.session.Status == model.StatusActive {
		s.addLogEntryLocked(callsign, constants.NetControlToken, constants.CheckInMessage)
	}
	return s.stateLocked()
}

// UpdateParticipant 编辑参与电台
// 字段更新前做去空白（呼号另做大写化）；当呼号或战术呼号的字面值发生变化时，
// 对全部历史日志做一次令牌替换：From/To 精确等于旧值的条目改写为新值
// （战术呼号改为空时回退为新呼号）。替换是无条件的——改名撞上另一电台的
// 令牌会把两者的日志历史合并，这是沿袭的已知行为，不在此处校验
func (s *netService) UpdateParticipant(req request.UpdateParticipantRequest) *respond.NetStateRespond {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.participants {
		if s.participants[i].Id == req.Id {
			idx = i
			break
		}
	}
	if idx < 0 {
		// 未知 ID 静默无操作
		return s.stateLocked()
	}
	current := s.participants[idx]

	next := current
	callsignChanged := false
	tacticalChanged := false
	if req.Callsign != nil {
		next.Callsign = normalizeCallsign(*req.Callsign)
		callsignChanged = next.Callsign != current.Callsign
	}
	if req.TacticalCall != nil {
		next.TacticalCall = strings.TrimSpace(*req.TacticalCall)
		tacticalChanged = next.TacticalCall != current.TacticalCall
	}
	if req.Name != nil {
		next.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		next.Location = strings.TrimSpace(*req.Location)
	}
	s.participants[idx] = next

	if callsignChanged || tacticalChanged {
		replaceToken := func(token string) string {
			if callsignChanged && token == current.Callsign {
				return next.Callsign
			}
			if tacticalChanged && token == current.TacticalCall {
				if next.TacticalCall == "" {
					return next.Callsign
				}
				return next.TacticalCall
			}
			return token
		}
		for i := range s.logEntries {
			s.logEntries[i].FromCallsign = replaceToken(s.logEntries[i].FromCallsign)
			s.logEntries[i].ToCallsign = replaceToken(s.logEntries[i].ToCallsign)
		}
	}

	s.persistLocked()
	return s.stateLocked()
}

// RemoveParticipant 移除参与电台
// 只删除名册条目：幸存电台的签到序号不重排，引用被移除呼号的日志
// 原样保留为字面文本
func (s *netService) RemoveParticipant(id string) *respond.NetStateRespond {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := make([]model.Participant, 0, len(s.participants))
	for _, p := range s.participants {
		if p.Id != id {
			remaining = append(remaining, p)
		}
	}
	s.participants = remaining
	s.persistLocked()
	return s.stateLocked()
}

// ==================== 日志变更 ====================

// AddLogEntry 追加通联日志
// 收信方空白时默认 "NC"；日志序号 = 当前条目数 + 1；严格只追加
func (s *netService) AddLogEntry(req request.AddLogEntryRequest) *respond.NetStateRespond {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addLogEntryLocked(req.FromCallsign, req.ToCallsign, req.Message)
	return s.stateLocked()
}

// AcknowledgeEntry 标记最近已确认的日志条目
// 单一标记整体覆盖，对日志内容无任何影响（纯界面辅助状态）
func (s *netService) AcknowledgeEntry(entryId string) *respond.NetStateRespond {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastAckedId = entryId
	s.persistLocked()
	return s.stateLocked()
}

// addLogEntryLocked 追加一条日志并持久化，调用方必须已持有锁
func (s *netService) addLogEntryLocked(from, to, message string) {
	if strings.TrimSpace(to) == "" {
		to = constants.NetControlToken
	}
	entry := model.LogEntry{
		Id:           s.newId(),
		EntryNumber:  len(s.logEntries) + 1,
		Time:         s.now(),
		FromCallsign: from,
		ToCallsign:   to,
		Message:      message,
	}
	s.logEntries = append(s.logEntries, entry)
	s.persistLocked()
}

// ==================== 导出 / 导入 ====================

// ExportCSV 导出当前网次为 CSV
// 返回下载文件名和文件内容；无网次时返回 ErrNoActiveSession
func (s *netService) ExportCSV() (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return "", "", errorx.ErrNoActiveSession
	}
	bundle := s.bundleLocked()
	return export.CSVFilename(&bundle.Session), export.BuildSessionCSV(bundle), nil
}

// ExportPDF 导出当前网次为 ICS-309 PDF
// 返回下载文件名和文件字节；无网次时返回 ErrNoActiveSession
func (s *netService) ExportPDF() (string, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return "", nil, errorx.ErrNoActiveSession
	}
	bundle := s.bundleLocked()
	data, err := export.BuildICS309PDF(bundle)
	if err != nil {
		return "", nil, errorx.Wrap(err, errorx.CodeExportFailed, "生成 ICS-309 PDF 失败")
	}
	return export.PDFFilename(&bundle.Session), data, nil
}

// ImportCSV 从导出格式的 CSV 重建网次并设为当前网次
// 导入的网次获得全新 ID，且无论导出时处于什么状态都强制恢复为 active
// （沿袭原行为：导入即继续通联）
func (s *netService) ImportCSV(csvText string) (*respond.NetStateRespond, error) {
	bundle, err := export.ParseSessionCSV(csvText)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeImportFailed, "CSV 导入失败")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.installLocked(bundle)
	s.persistLocked()
	return s.stateLocked(), nil
}

// ==================== 内部辅助 ====================

// installLocked 将数据包装入内存状态，调用方必须已持有锁
// active 状态的网次以 session.DateTime 重建计时起点（计时不持久化）
func (s *netService) installLocked(bundle *model.SessionBundle) {
	session := bundle.Session
	s.session = &session
	s.participants = append([]model.Participant(nil), bundle.Participants...)
	s.logEntries = append([]model.LogEntry(nil), bundle.LogEntries...)
	s.lastAckedId = bundle.LastAcknowledgedEntryId
	if session.Status == model.StatusActive {
		s.startTime = session.DateTime
	} else {
		s.startTime = time.Time{}
	}
}

// bundleLocked 从内存状态构造数据包，调用方必须已持有锁
func (s *netService) bundleLocked() *model.SessionBundle {
	return &model.SessionBundle{
		Session:                 *s.session,
		Participants:            append([]model.Participant(nil), s.participants...),
		LogEntries:              append([]model.LogEntry(nil), s.logEntries...),
		LastAcknowledgedEntryId: s.lastAckedId,
	}
}

// persistLocked 同步写入完整数据包，调用方必须已持有锁
// 写入失败只记日志不向上传播：持久化是尽力而为，失败时本次及后续
// 变更仅保留在内存（降级运行）
func (s *netService) persistLocked() {
	if s.session == nil {
		return
	}
	bundle := s.bundleLocked()
	if err := s.repo.Save(bundle); err != nil {
		zap.L().Warn("持久化网次数据包失败，变更仅保留在内存",
			zap.String("session_id", s.session.Id),
			zap.Error(err),
		)
	}
}

// stateLocked 构造状态快照响应，调用方必须已持有锁
// 切片做浅拷贝，避免响应序列化与后续变更竞争
func (s *netService) stateLocked() *respond.NetStateRespond {
	var session *model.NetSession
	if s.session != nil {
		copied := *s.session
		session = &copied
	}
	return &respond.NetStateRespond{
		Session:                 session,
		Participants:            append([]model.Participant(nil), s.participants...),
		LogEntries:              append([]model.LogEntry(nil), s.logEntries...),
		LastAcknowledgedEntryId: s.lastAckedId,
	}
}

// normalizeCallsign 呼号规范化：去空白并大写
func normalizeCallsign(callsign string) string {
	return strings.ToUpper(strings.TrimSpace(callsign))
}
