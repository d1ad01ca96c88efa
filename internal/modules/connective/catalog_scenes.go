package connective

var chainCatalog = []ChainDef{
	{ID: "zh_chain__cause_to_result__v1", Step1: RelCause, Step2: RelResult, SceneSchema: "reason_outcome_followup"},
	{ID: "zh_chain__condition_to_result__v1", Step1: RelCondition, Step2: RelResult, SceneSchema: "condition_outcome_followup"},
	{ID: "zh_chain__time_to_result__v1", Step1: RelTime, Step2: RelResult, SceneSchema: "time_event_outcome"},
	{ID: "zh_chain__contrast_to_result__v1", Step1: RelContrast, Step2: RelResult, SceneSchema: "expectation_actual_consequence"},
	{ID: "zh_chain__choice_to_condition__v1", Step1: RelChoice, Step2: RelCondition, SceneSchema: "optionA_optionB_then_rule"},
	{ID: "zh_chain__addition_to_result__v1", Step1: RelAddition, Step2: RelResult, SceneSchema: "fact1_fact2_inference"},
	{ID: "zh_chain__purpose_to_result__v1", Step1: RelPurpose, Step2: RelResult, SceneSchema: "action_goal_effect"},
	{ID: "zh_chain__time_to_contrast__v1", Step1: RelTime, Step2: RelContrast, SceneSchema: "time_then_now_contrast"},
	{ID: "zh_chain__condition_to_contrast__v1", Step1: RelCondition, Step2: RelContrast, SceneSchema: "condition_expected_surprise"},
}

// Scene slots are P1, P2, P3 in narrative order. P1 doubles as the seed.
var sceneCatalog = []SceneDef{
	{ID: "zh_scene__study_sleep__v1", Schema: "reason_outcome_followup", P1: "我没睡够", P2: "我还是把笔记整理完了", P3: "第二天上课更轻松了"},
	{ID: "zh_scene__work_wifi__v1", Schema: "reason_outcome_followup", P1: "网速不稳", P2: "会议一直断线", P3: "我改用手机热点才顺利讲完"},
	{ID: "zh_scene__travel_rain__v1", Schema: "reason_outcome_followup", P1: "下雨了", P2: "我没去远处", P3: "我就在附近的小店慢慢逛"},
	{ID: "zh_scene__lab_sample__v1", Schema: "reason_outcome_followup", P1: "样品太湿", P2: "读数不稳定", P3: "我先烘干再重新测了一次"},
	{ID: "zh_scene__daily_no_umbrella__v1", Schema: "reason_outcome_followup", P1: "我忘带伞", P2: "衣服被淋湿了", P3: "回家后我立刻换了衣服"},
	{ID: "zh_scene__tech_update_lag__v1", Schema: "reason_outcome_followup", P1: "系统更新后卡顿", P2: "我打开应用变慢了", P3: "我清理缓存后顺畅很多"},
	{ID: "zh_scene__kitchen_salt__v1", Schema: "reason_outcome_followup", P1: "我盐放多了", P2: "汤太咸了", P3: "我加了点水才勉强能喝"},
	{ID: "zh_scene__bus_traffic__v1", Schema: "reason_outcome_followup", P1: "路上堵车", P2: "我到得有点晚", P3: "我下次会早点出门"},
	{ID: "zh_scene__printer_paper__v1", Schema: "reason_outcome_followup", P1: "打印机卡纸", P2: "文件没打印出来", P3: "我把纸重新放好再试了一次"},
	{ID: "zh_scene__phone_low_battery__v1", Schema: "reason_outcome_followup", P1: "手机电量太低", P2: "导航一直提醒省电模式", P3: "我找了个地方先充电"},
	{ID: "zh_scene__alarm__v1", Schema: "condition_outcome_followup", P1: "我不设闹钟", P2: "早上就起不来", P3: "我只好一路小跑赶时间"},
	{ID: "zh_scene__backup__v1", Schema: "condition_outcome_followup", P1: "我不备份文件", P2: "电脑一出问题就会丢资料", P3: "我现在每周都备份一次"},
	{ID: "zh_scene__umbrella__v1", Schema: "condition_outcome_followup", P1: "我出门不带伞", P2: "遇到下雨就会很狼狈", P3: "我开始把伞放在包里"},
	{ID: "zh_scene__practice__v1", Schema: "condition_outcome_followup", P1: "我不提前练习", P2: "上台就容易紧张", P3: "我后来每天都练十分钟"},
	{ID: "zh_scene__sleep_early__v1", Schema: "condition_outcome_followup", P1: "我晚上早点睡", P2: "第二天精神就更好", P3: "我效率也提高了"},
	{ID: "zh_scene__save_password__v1", Schema: "condition_outcome_followup", P1: "我不保存密码", P2: "每次登录都要重输", P3: "我干脆用密码管理器"},
	{ID: "zh_scene__check_weather__v1", Schema: "condition_outcome_followup", P1: "我不看天气预报", P2: "行程就容易被打乱", P3: "我现在出门前都会看一眼"},
	{ID: "zh_scene__write_plan__v1", Schema: "condition_outcome_followup", P1: "我不列计划", P2: "事情就会越堆越多", P3: "我开始每天写待办清单"},
	{ID: "zh_scene__after_class__v1", Schema: "time_event_outcome", P1: "我下课了", P2: "我去图书馆复习", P3: "学习效率提高了"},
	{ID: "zh_scene__arrive_home__v1", Schema: "time_event_outcome", P1: "我到家了", P2: "我先洗个澡", P3: "整个人放松多了"},
	{ID: "zh_scene__finish_meeting__v1", Schema: "time_event_outcome", P1: "会议结束了", P2: "我把要点整理成文档", P3: "同事更容易跟进"},
	{ID: "zh_scene__finish_experiment__v1", Schema: "time_event_outcome", P1: "实验做完了", P2: "我马上记录数据", P3: "后面分析更顺利"},
	{ID: "zh_scene__lunch_time__v1", Schema: "time_event_outcome", P1: "中午到了", P2: "我出去吃点东西", P3: "下午不那么饿了"},
	{ID: "zh_scene__weekend_start__v1", Schema: "time_event_outcome", P1: "周末开始了", P2: "我把房间收拾了一下", P3: "住起来更舒服了"},
	{ID: "zh_scene__project_deadline__v1", Schema: "time_event_outcome", P1: "截止日期到了", P2: "我把最后一版提交上去", P3: "我终于松了口气"},
	{ID: "zh_scene__rain_stop__v1", Schema: "time_event_outcome", P1: "雨停了", P2: "我出去走走", P3: "心情好了一点"},
	{ID: "zh_scene__expect_easy_but_hard__v1", Schema: "expectation_actual_consequence", P1: "我以为今天会很顺利", P2: "事情却特别多", P3: "我忙到很晚才结束"},
	{ID: "zh_scene__expect_fast_but_slow__v1", Schema: "expectation_actual_consequence", P1: "我以为十分钟就能搞定", P2: "过程却拖了很久", P3: "我后面的安排被迫改了"},
	{ID: "zh_scene__expect_quiet_but_noisy__v1", Schema: "expectation_actual_consequence", P1: "我以为咖啡店会很安静", P2: "里面却很吵", P3: "我只好换个地方"},
	{ID: "zh_scene__expect_cheaper_but_expensive__v1", Schema: "expectation_actual_consequence", P1: "我以为修理不会太贵", P2: "费用却超出预算", P3: "我只能先做最必要的部分"},
	{ID: "zh_scene__expect_ready_but_missing__v1", Schema: "expectation_actual_consequence", P1: "我以为资料都准备好了", P2: "关键文件却找不到", P3: "我只好重新整理一遍"},
	{ID: "zh_scene__expect_good_weather_but_rain__v1", Schema: "expectation_actual_consequence", P1: "我以为今天不会下雨", P2: "外面却突然变天", P3: "我被淋得有点狼狈"},
	{ID: "zh_scene__option_cook_or_takeout__v1", Schema: "optionA_optionB_then_rule", P1: "我可以自己做饭", P2: "我也可以点外卖", P3: "如果我点外卖，就要多等一会儿"},
	{ID: "zh_scene__option_walk_or_bus__v1", Schema: "optionA_optionB_then_rule", P1: "我可以走路过去", P2: "我也可以坐公交", P3: "如果我坐公交，就得看发车时间"},
	{ID: "zh_scene__option_train_or_taxi__v1", Schema: "optionA_optionB_then_rule", P1: "我可以坐地铁", P2: "我也可以打车", P3: "如果我打车，就会多花一些钱"},
	{ID: "zh_scene__option_now_or_later__v1", Schema: "optionA_optionB_then_rule", P1: "我可以现在就开始", P2: "我也可以拖到明天", P3: "如果我拖到明天，就会更赶"},
	{ID: "zh_scene__two_facts_tired__v1", Schema: "fact1_fact2_inference", P1: "我昨晚睡得很晚", P2: "今天还要早起", P3: "我整天都很困"},
	{ID: "zh_scene__two_facts_busy__v1", Schema: "fact1_fact2_inference", P1: "我这周任务很多", P2: "每天还要开好几场会", P3: "我几乎没有休息时间"},
	{ID: "zh_scene__two_facts_save_time__v1", Schema: "fact1_fact2_inference", P1: "我把路线提前查好了", P2: "出门前也准备齐东西", P3: "路上省了不少时间"},
	{ID: "zh_scene__two_facts_more_focus__v1", Schema: "fact1_fact2_inference", P1: "我把手机调成静音", P2: "我还关掉了消息提醒", P3: "我更能专心做事"},
	{ID: "zh_scene__two_facts_cost__v1", Schema: "fact1_fact2_inference", P1: "我买了不少食材", P2: "还买了很多零食", P3: "这个月开销变大了"},
	{ID: "zh_scene__leave_early__v1", Schema: "action_goal_effect", P1: "我提前半小时出门", P2: "赶上早班车", P3: "我没有迟到"},
	{ID: "zh_scene__write_outline__v1", Schema: "action_goal_effect", P1: "我先写了提纲", P2: "讲清楚重点", P3: "汇报更有条理"},
	{ID: "zh_scene__dry_sample__v1", Schema: "action_goal_effect", P1: "我先把样品烘干", P2: "读数更稳定", P3: "数据更可靠"},
	{ID: "zh_scene__clear_cache__v1", Schema: "action_goal_effect", P1: "我清理了缓存", P2: "系统运行更顺畅", P3: "应用打开更快"},
	{ID: "zh_scene__prepare_questions__v1", Schema: "action_goal_effect", P1: "我提前准备了问题清单", P2: "沟通更高效", P3: "会议时间缩短了"},
	{ID: "zh_scene__then_now_study__v1", Schema: "time_then_now_contrast", P1: "以前我复习很随意", P2: "我经常记不住重点", P3: "现在我却更有方法了"},
	{ID: "zh_scene__then_now_sleep__v1", Schema: "time_then_now_contrast", P1: "以前我总是熬夜", P2: "我白天很没精神", P3: "现在我反而睡得更规律"},
	{ID: "zh_scene__then_now_workflow__v1", Schema: "time_then_now_contrast", P1: "刚开始我不太会用这个工具", P2: "我做事很慢", P3: "后来我却越来越熟练"},
	{ID: "zh_scene__prepared_but_mistake__v1", Schema: "condition_expected_surprise", P1: "我提前准备了", P2: "事情本来应该很顺利", P3: "结果却还是出了差错"},
	{ID: "zh_scene__leave_early_but_late__v1", Schema: "condition_expected_surprise", P1: "我出门很早", P2: "我本来应该不会迟到", P3: "路上却偏偏堵得厉害"},
	{ID: "zh_scene__practice_but_nervous__v1", Schema: "condition_expected_surprise", P1: "我练习了很多次", P2: "我本来应该很自信", P3: "上台却还是有点紧张"},
}
